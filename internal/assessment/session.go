// Package assessment runs wizard sessions: it applies user actions through
// the profile reducer, rebuilds plans on demand and dispatches the safety
// brief request when a profile completes.
package assessment

import (
	"errors"
	"time"

	"example.com/fitassess/internal/advice"
	"example.com/fitassess/internal/profile"
)

var (
	// ErrSessionNotFound indicates the session does not exist or belongs to another subject.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotCompleted indicates the plan was requested before the wizard finished.
	ErrNotCompleted = errors.New("assessment not completed")
)

// AdviceStatus tracks the safety brief for the current completion.
type AdviceStatus string

const (
	AdviceNone        AdviceStatus = "none"
	AdvicePending     AdviceStatus = "pending"
	AdviceReady       AdviceStatus = "ready"
	AdviceUnavailable AdviceStatus = "unavailable"
)

// Session is one browser session's wizard.
type Session struct {
	ID           string         `json:"id"`
	Subject      string         `json:"-"`
	State        profile.State  `json:"state"`
	Generation   int            `json:"generation"`
	AdviceStatus AdviceStatus   `json:"adviceStatus"`
	Advice       *advice.Advice `json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (s Session) clone() Session {
	out := s
	if s.Advice != nil {
		a := *s.Advice
		out.Advice = &a
	}
	return out
}
