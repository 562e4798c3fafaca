package catalog

import (
	"strings"

	"example.com/fitassess/internal/profile"
)

// Plan is the results view for a completed profile.
type Plan struct {
	Summary   string     `json:"summary"`
	Exercises []Exercise `json:"exercises"`
	Products  []Product  `json:"products"`
}

var intensityLabels = map[profile.ActivityLevel]string{
	profile.LevelSedentary: "beginner-friendly",
	profile.LevelActive:    "moderate intensity",
	profile.LevelAthlete:   "challenging",
}

// BuildPlan runs both filters for p. It is recomputed on every call.
func (c *Catalog) BuildPlan(p profile.Profile) Plan {
	injuries := p.ActiveInjuries()
	exercises := c.SelectExercises(p.TargetZones, injuries, p.ActivityLevel)

	ids := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		ids = append(ids, ex.ID)
	}

	return Plan{
		Summary:   Summary(p),
		Exercises: exercises,
		Products:  c.SelectProducts(injuries, ids),
	}
}

// Summary renders the one-line description shown above the plan.
func Summary(p profile.Profile) string {
	level, ok := intensityLabels[p.ActivityLevel]
	if !ok {
		level = "personalized"
	}
	zones := "full body"
	if len(p.TargetZones) > 0 {
		zones = strings.Join(p.TargetZones, ", ")
	}
	return "Based on your " + level + " profile focusing on " + zones
}
