// Package config centralises configuration parsing for the assessment service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the assessment service.
type Config struct {
	HTTPAddress        string
	MetricsAddress     string
	LogLevel           string
	AllowedOrigin      string
	JWTSecret          string
	JWTIssuer          string
	HTTPTimeout        time.Duration
	SessionTTL         time.Duration
	SessionSweep       time.Duration
	CatalogPostgresURL string // Optional; the built-in catalog is used when empty.
	CoachURL           string // Coach function speaking the advice contract.
	CoachToken         string
	AIGatewayURL       string // OpenAI-compatible chat completions endpoint.
	AIGatewayKey       string
	AIModel            string
	AdviceTimeout      time.Duration
	KafkaBrokers       []string // Event publishing is disabled when empty.
	AssessmentTopic    string
	DeadLetterTopic    string // Receives messages the insights consumer rejects.
	ConsumerGroup      string
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		HTTPAddress:        getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:     getEnv("METRICS_ADDRESS", ":9195"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:          getEnv("JWT_ISSUER", "i5e.identity"),
		HTTPTimeout:        getDurationEnv("HTTP_TIMEOUT", 5*time.Second),
		SessionTTL:         getDurationEnv("SESSION_TTL", 2*time.Hour),
		SessionSweep:       getDurationEnv("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		CatalogPostgresURL: getEnv("CATALOG_POSTGRES_URL", ""),
		CoachURL:           getEnv("COACH_URL", ""),
		CoachToken:         getEnv("COACH_TOKEN", ""),
		AIGatewayURL:       getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayKey:       getEnv("AI_GATEWAY_KEY", ""),
		AIModel:            getEnv("AI_MODEL", "google/gemini-2.5-flash"),
		AdviceTimeout:      getDurationEnv("ADVICE_TIMEOUT", 15*time.Second),
		KafkaBrokers:       splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		AssessmentTopic:    getEnv("ASSESSMENT_TOPIC", "assessment_events"),
		DeadLetterTopic:    getEnv("DEAD_LETTER_TOPIC", "assessment_events.dlq"),
		ConsumerGroup:      getEnv("CONSUMER_GROUP_ID", "assessment-insights"),
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
