package profile

import (
	"errors"
	"fmt"
)

// ActionType names a wizard event.
type ActionType string

const (
	ActionSetActivityLevel ActionType = "set_activity_level"
	ActionToggleTargetZone ActionType = "toggle_target_zone"
	ActionToggleInjury     ActionType = "toggle_injury"
	ActionSetGoal          ActionType = "set_goal"
	ActionNext             ActionType = "next"
	ActionBack             ActionType = "back"
	ActionReset            ActionType = "reset"
)

var (
	// ErrUnknownAction indicates an unsupported action type.
	ErrUnknownAction = errors.New("unknown action")
	// ErrWrongStep indicates a setter used outside the step that owns its field.
	ErrWrongStep = errors.New("field not editable on current step")
)

var setterSteps = map[ActionType]Step{
	ActionSetActivityLevel: StepActivity,
	ActionToggleTargetZone: StepTarget,
	ActionToggleInjury:     StepInjuries,
	ActionSetGoal:          StepGoal,
}

// Action is a single user event applied to a State.
type Action struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value,omitempty"`
}

// Apply is the wizard reducer. Setters are only accepted on their own step
// while the profile is incomplete; reset is always accepted.
func Apply(s State, a Action) (State, Signal, error) {
	if a.Type == ActionReset {
		return s.Reset(), SignalNone, nil
	}
	if s.Profile.Completed {
		return s, SignalNone, ErrCompleted
	}

	if owner, ok := setterSteps[a.Type]; ok && owner != s.Step {
		return s, SignalNone, fmt.Errorf("%s on step %s: %w", a.Type, s.Step, ErrWrongStep)
	}

	var (
		next Profile
		err  error
	)
	switch a.Type {
	case ActionNext:
		return s.Next()
	case ActionBack:
		return s.Back()
	case ActionSetActivityLevel:
		next, err = s.Profile.SetActivityLevel(a.Value)
	case ActionToggleTargetZone:
		next, err = s.Profile.ToggleTargetZone(a.Value)
	case ActionToggleInjury:
		next, err = s.Profile.ToggleInjury(a.Value)
	case ActionSetGoal:
		next, err = s.Profile.SetGoal(a.Value)
	default:
		return s, SignalNone, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	if err != nil {
		return s, SignalNone, fmt.Errorf("%s: %w", a.Type, err)
	}
	s.Profile = next
	return s, SignalNone, nil
}
