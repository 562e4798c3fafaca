// Package advice talks to the AI coach that writes the short safety brief
// shown next to a completed plan.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Request is the profile excerpt sent to the coach.
type Request struct {
	Injury        string   `json:"injury"`
	ActivityLevel string   `json:"activityLevel"`
	TargetZones   []string `json:"targetZones"`
}

// Advice is the coach's reply.
type Advice struct {
	SafetyTip          string `json:"safetyTip"`
	GearRecommendation string `json:"gearRecommendation"`
	MotivationalQuote  string `json:"motivationalQuote"`
}

// Validate reports whether every field is populated.
func (a Advice) Validate() error {
	switch {
	case strings.TrimSpace(a.SafetyTip) == "":
		return fmt.Errorf("%w: safetyTip missing", ErrMalformed)
	case strings.TrimSpace(a.GearRecommendation) == "":
		return fmt.Errorf("%w: gearRecommendation missing", ErrMalformed)
	case strings.TrimSpace(a.MotivationalQuote) == "":
		return fmt.Errorf("%w: motivationalQuote missing", ErrMalformed)
	}
	return nil
}

var (
	// ErrUnavailable indicates no coach is configured.
	ErrUnavailable = errors.New("advice unavailable")
	// ErrMalformed indicates the coach replied with something other than an Advice.
	ErrMalformed = errors.New("malformed advice payload")
	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("rate limit exceeded, please try again later")
	// ErrCreditsExhausted maps an upstream 402.
	ErrCreditsExhausted = errors.New("AI credits exhausted")
)

// Fallback is served by the coach endpoint when the model cannot be reached
// for reasons other than rate limiting or billing.
var Fallback = Advice{
	SafetyTip:          "Always warm up before exercising and maintain proper posture.",
	GearRecommendation: "Exercise Mat",
	MotivationalQuote:  "Every step counts!",
}

// MalformedFallback is served by the coach endpoint when the model answered
// but its reply could not be read as advice.
var MalformedFallback = Advice{
	SafetyTip:          "Listen to your body and stop if you feel any pain. Start slowly and maintain proper form throughout.",
	GearRecommendation: "Yoga Mat",
	MotivationalQuote:  "Progress, not perfection!",
}

// Advisor produces advice for a profile excerpt.
type Advisor interface {
	Advise(ctx context.Context, req Request) (*Advice, error)
}

// NoopAdvisor never has advice.
type NoopAdvisor struct{}

// Advise always returns ErrUnavailable.
func (NoopAdvisor) Advise(context.Context, Request) (*Advice, error) { return nil, ErrUnavailable }

// StatusError represents a non-2xx upstream response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("advice upstream responded %d %s", e.Status, http.StatusText(e.Status))
}

// Unwrap maps billing and throttling statuses onto sentinel errors.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrCreditsExhausted
	}
	return nil
}

func decodeAdvice(raw []byte) (*Advice, error) {
	var out Advice
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
