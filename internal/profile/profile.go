// Package profile models the answers a user gives during the assessment
// wizard and the step-scoped setters that mutate them.
package profile

import (
	"errors"
	"slices"
	"strings"
)

// ActivityLevel is the self-reported fitness tier that gates exercise difficulty.
type ActivityLevel string

const (
	LevelUnset     ActivityLevel = ""
	LevelSedentary ActivityLevel = "sedentary"
	LevelActive    ActivityLevel = "active"
	LevelAthlete   ActivityLevel = "athlete"
)

// Zone tags offered by the target step.
const (
	ZoneBack      = "back"
	ZoneLegs      = "legs"
	ZoneShoulders = "shoulders"
	ZoneCore      = "core"
	ZoneFullBody  = "full-body"
)

// Injury tags offered by the injury step. InjuryNone is exclusive with every other tag.
const (
	InjuryKnee     = "knee"
	InjuryBack     = "back"
	InjuryShoulder = "shoulder"
	InjuryWrist    = "wrist"
	InjuryNone     = "none"
)

// Goals suggested by the goal step. Any non-blank goal is accepted.
var Goals = []string{"pain-relief", "flexibility", "strength", "prevention"}

var (
	// ErrInvalidActivityLevel indicates a level outside the known tiers.
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	// ErrInvalidZone indicates an unknown target zone tag.
	ErrInvalidZone = errors.New("invalid target zone")
	// ErrInvalidInjury indicates an unknown injury tag.
	ErrInvalidInjury = errors.New("invalid injury")
	// ErrEmptyGoal indicates a blank goal.
	ErrEmptyGoal = errors.New("goal is required")
)

var (
	knownZones    = []string{ZoneBack, ZoneLegs, ZoneShoulders, ZoneCore, ZoneFullBody}
	knownInjuries = []string{InjuryKnee, InjuryBack, InjuryShoulder, InjuryWrist, InjuryNone}
)

// IsKnownZone reports whether zone is one of the target-zone tags.
func IsKnownZone(zone string) bool { return slices.Contains(knownZones, zone) }

// IsKnownInjury reports whether tag is one of the injury tags, including InjuryNone.
func IsKnownInjury(tag string) bool { return slices.Contains(knownInjuries, tag) }

// IsSuggestedGoal reports whether goal is one of Goals.
func IsSuggestedGoal(goal string) bool { return slices.Contains(Goals, goal) }

// Profile holds the user's answers.
type Profile struct {
	ActivityLevel ActivityLevel `json:"activityLevel"`
	TargetZones   []string      `json:"targetZones"`
	Injuries      []string      `json:"injuries"`
	Goal          string        `json:"goal"`
	Completed     bool          `json:"completed"`
}

// New returns a profile with all-empty defaults.
func New() Profile {
	return Profile{TargetZones: []string{}, Injuries: []string{}}
}

// ParseActivityLevel validates a raw level. The empty string is rejected.
func ParseActivityLevel(raw string) (ActivityLevel, error) {
	switch level := ActivityLevel(strings.TrimSpace(raw)); level {
	case LevelSedentary, LevelActive, LevelAthlete:
		return level, nil
	default:
		return LevelUnset, ErrInvalidActivityLevel
	}
}

// SetActivityLevel returns a copy of p with the activity level replaced.
func (p Profile) SetActivityLevel(raw string) (Profile, error) {
	level, err := ParseActivityLevel(raw)
	if err != nil {
		return p, err
	}
	out := p.clone()
	out.ActivityLevel = level
	return out, nil
}

// ToggleTargetZone adds the zone when absent and removes it when present.
func (p Profile) ToggleTargetZone(zone string) (Profile, error) {
	zone = strings.TrimSpace(zone)
	if !slices.Contains(knownZones, zone) {
		return p, ErrInvalidZone
	}
	out := p.clone()
	if i := slices.Index(out.TargetZones, zone); i >= 0 {
		out.TargetZones = slices.Delete(out.TargetZones, i, i+1)
		return out, nil
	}
	out.TargetZones = append(out.TargetZones, zone)
	return out, nil
}

// ToggleInjury maintains the "none" exclusivity: selecting none replaces the
// whole selection, selecting anything else drops none before toggling.
func (p Profile) ToggleInjury(tag string) (Profile, error) {
	tag = strings.TrimSpace(tag)
	if !slices.Contains(knownInjuries, tag) {
		return p, ErrInvalidInjury
	}
	out := p.clone()
	if tag == InjuryNone {
		out.Injuries = []string{InjuryNone}
		return out, nil
	}
	filtered := slices.DeleteFunc(out.Injuries, func(v string) bool { return v == InjuryNone })
	if i := slices.Index(filtered, tag); i >= 0 {
		out.Injuries = slices.Delete(filtered, i, i+1)
		return out, nil
	}
	out.Injuries = append(filtered, tag)
	return out, nil
}

// SetGoal replaces the goal. Blank goals are rejected.
func (p Profile) SetGoal(goal string) (Profile, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return p, ErrEmptyGoal
	}
	out := p.clone()
	out.Goal = goal
	return out, nil
}

// ActiveInjuries returns the injuries with the "none" sentinel removed.
func (p Profile) ActiveInjuries() []string {
	out := make([]string, 0, len(p.Injuries))
	for _, injury := range p.Injuries {
		if injury != InjuryNone {
			out = append(out, injury)
		}
	}
	return out
}

// PrimaryInjury is the first selected injury, or "None".
func (p Profile) PrimaryInjury() string {
	if len(p.Injuries) == 0 {
		return "None"
	}
	return p.Injuries[0]
}

func (p Profile) clone() Profile {
	out := p
	out.TargetZones = append(make([]string, 0, len(p.TargetZones)+1), p.TargetZones...)
	out.Injuries = append(make([]string, 0, len(p.Injuries)+1), p.Injuries...)
	return out
}
