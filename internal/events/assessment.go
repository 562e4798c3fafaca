// Package events defines the assessment event payloads and their publisher.
package events

import "time"

// Event type and topic for completed assessments.
const (
	TypeAssessmentCompleted = "assessment.completed"
	TopicAssessments        = "assessment_events"
	HeaderEventType         = "event_type"
)

// AssessmentCompleted is emitted each time a wizard session completes.
type AssessmentCompleted struct {
	EventID       string    `json:"event_id"`
	SessionID     string    `json:"session_id"`
	Subject       string    `json:"subject"`
	ActivityLevel string    `json:"activity_level"`
	TargetZones   []string  `json:"target_zones"`
	Injuries      []string  `json:"injuries"`
	Goal          string    `json:"goal"`
	ExerciseCount int       `json:"exercise_count"`
	ProductIDs    []string  `json:"product_ids"`
	CompletedAt   time.Time `json:"completed_at"`
}
