package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fitassess/internal/profile"
)

func TestBuildPlanStripsNoneInjury(t *testing.T) {
	p := profile.Profile{
		ActivityLevel: profile.LevelSedentary,
		TargetZones:   []string{profile.ZoneBack},
		Injuries:      []string{profile.InjuryNone},
		Goal:          "pain-relief",
		Completed:     true,
	}

	plan := Default().BuildPlan(p)
	require.Equal(t, "Based on your beginner-friendly profile focusing on back", plan.Summary)
	require.Equal(t,
		[]string{"cat-cow", "bird-dog", "standing-hip-flexor", "glute-bridge", "shoulder-rolls", "seated-spinal-twist"},
		exerciseIDs(plan.Exercises))
	require.Equal(t, []string{"yoga-mat", "resistance-band", "foam-roller", "yoga-blocks"}, productIDs(plan.Products))
}

func TestBuildPlanAppliesInjuries(t *testing.T) {
	p := profile.Profile{
		ActivityLevel: profile.LevelActive,
		TargetZones:   []string{profile.ZoneLegs, profile.ZoneCore},
		Injuries:      []string{profile.InjuryKnee},
	}

	plan := Default().BuildPlan(p)
	require.NotContains(t, exerciseIDs(plan.Exercises), "standing-hip-flexor")
	require.Contains(t, exerciseIDs(plan.Exercises), "plank")
	require.Equal(t, "Based on your moderate intensity profile focusing on legs, core", plan.Summary)
	require.Contains(t, productIDs(plan.Products), "knee-support")
}

func TestSummaryDefaults(t *testing.T) {
	require.Equal(t, "Based on your personalized profile focusing on full body", Summary(profile.New()))
}
