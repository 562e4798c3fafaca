package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const systemPrompt = `You are an expert Physiotherapist and sports equipment specialist.
Act as a friendly AI coach providing personalized safety advice for workouts.
Always be encouraging but prioritize safety.
Keep responses concise and actionable.`

var codeFence = regexp.MustCompile("```(?:json)?\\n?")

// GatewayConfig configures a chat-completions gateway.
type GatewayConfig struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GatewayAdvisor asks an OpenAI-compatible chat-completions endpoint for advice.
type GatewayAdvisor struct {
	client *http.Client
	cfg    GatewayConfig
}

// NewGatewayAdvisor constructs a GatewayAdvisor.
func NewGatewayAdvisor(cfg GatewayConfig) *GatewayAdvisor {
	return &GatewayAdvisor{client: &http.Client{Timeout: cfg.Timeout}, cfg: cfg}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Advise implements Advisor.
func (g *GatewayAdvisor) Advise(ctx context.Context, in Request) (*Advice, error) {
	body, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: UserPrompt(in)},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(raw)}
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformed)
	}
	return decodeAdvice([]byte(StripCodeFence(completion.Choices[0].Message.Content)))
}

// StripCodeFence removes markdown fences models like to wrap JSON in.
func StripCodeFence(content string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(content, ""))
}

// UserPrompt renders the profile excerpt into the task prompt.
func UserPrompt(in Request) string {
	injury := coalesce(in.Injury, "None")
	level := coalesce(in.ActivityLevel, "Not specified")
	zones := "Full body"
	if len(in.TargetZones) > 0 {
		zones = strings.Join(in.TargetZones, ", ")
	}

	var b strings.Builder
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Injury/Constraint: %s\n", injury)
	fmt.Fprintf(&b, "- Activity Level: %s\n", level)
	fmt.Fprintf(&b, "- Target Zones: %s\n\n", zones)
	b.WriteString(`Task: Provide a personalized safety brief with:
1. A 2-sentence specific safety tip for this user during their workout
2. One recommended type of equipment (e.g., "Knee Support", "Yoga Block", "Resistance Band")
3. A short motivational quote (max 10 words)

Output Format (strictly JSON):
{
  "safetyTip": "Your advice here.",
  "gearRecommendation": "Product Category Name",
  "motivationalQuote": "Short punchy quote."
}`)
	return b.String()
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
