package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"example.com/fitassess/internal/events"
)

// ErrInvalidEvent indicates a payload that cannot be aggregated.
var ErrInvalidEvent = errors.New("invalid assessment event")

// InsightsHandler aggregates completed assessments into Prometheus counters.
type InsightsHandler struct{}

// NewInsightsHandler constructs the handler.
func NewInsightsHandler() *InsightsHandler {
	return &InsightsHandler{}
}

// Handle implements Handler. Unrelated event types are ignored.
func (h *InsightsHandler) Handle(_ context.Context, msg Message) error {
	if eventType := msg.Headers[events.HeaderEventType]; eventType != "" && eventType != events.TypeAssessmentCompleted {
		return nil
	}

	var evt events.AssessmentCompleted
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode assessment event: %w", err)
	}
	if strings.TrimSpace(evt.SessionID) == "" {
		return fmt.Errorf("%w: session_id missing", ErrInvalidEvent)
	}
	if strings.TrimSpace(evt.ActivityLevel) == "" {
		return fmt.Errorf("%w: activity_level missing", ErrInvalidEvent)
	}
	if evt.ExerciseCount < 0 {
		return fmt.Errorf("%w: negative exercise_count", ErrInvalidEvent)
	}

	recordCompletion(evt)
	return nil
}
