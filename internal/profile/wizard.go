package profile

import "errors"

// Step indexes the wizard pages.
type Step int

const (
	StepActivity Step = iota
	StepTarget
	StepInjuries
	StepGoal
)

// LastStep is the final page; advancing past it completes the profile.
const LastStep = StepGoal

var stepNames = [...]string{"activity", "target", "injuries", "goal"}

func (s Step) String() string {
	if s < StepActivity || s > LastStep {
		return "unknown"
	}
	return stepNames[s]
}

// Signal reports what a transition did so the caller can switch views.
type Signal string

const (
	SignalNone      Signal = "none"
	SignalAdvanced  Signal = "advanced"
	SignalRetreated Signal = "retreated"
	SignalBlocked   Signal = "blocked"
	SignalCompleted Signal = "completed"
	SignalExit      Signal = "exit"
)

// ErrCompleted is returned for any action except reset once the profile is complete.
var ErrCompleted = errors.New("assessment already completed")

// State is the wizard value passed between transitions. It is never mutated in place.
type State struct {
	Profile Profile `json:"profile"`
	Step    Step    `json:"currentStep"`
}

// NewState returns the session-start state.
func NewState() State {
	return State{Profile: New(), Step: StepActivity}
}

// CanProceed reports whether the current step's required field is populated.
func (s State) CanProceed() bool {
	switch s.Step {
	case StepActivity:
		return s.Profile.ActivityLevel != LevelUnset
	case StepTarget:
		return len(s.Profile.TargetZones) > 0
	case StepInjuries:
		return true
	case StepGoal:
		return s.Profile.Goal != ""
	default:
		return false
	}
}

// Next advances one step, or completes the profile from the last step.
func (s State) Next() (State, Signal, error) {
	if s.Profile.Completed {
		return s, SignalNone, ErrCompleted
	}
	if !s.CanProceed() {
		return s, SignalBlocked, nil
	}
	if s.Step < LastStep {
		s.Step++
		return s, SignalAdvanced, nil
	}
	s.Profile = s.Profile.clone()
	s.Profile.Completed = true
	return s, SignalCompleted, nil
}

// Back moves one step back, or signals exit from the first step.
func (s State) Back() (State, Signal, error) {
	if s.Profile.Completed {
		return s, SignalNone, ErrCompleted
	}
	if s.Step > StepActivity {
		s.Step--
		return s, SignalRetreated, nil
	}
	return s, SignalExit, nil
}

// Reset discards every answer and returns to the first step.
func (s State) Reset() State {
	return NewState()
}
