package catalog

import (
	"slices"

	"example.com/fitassess/internal/profile"
)

// MaxProducts caps the recommender output.
const MaxProducts = 4

// styleLabels are product tags that make an item a general recommendation.
var styleLabels = []string{"yoga", "strength", "recovery", "beginner"}

// SelectExercises keeps the exercises that match the zones, are safe for every
// injury and suit the activity level. Declaration order is preserved and an
// empty result is a valid outcome.
func (c *Catalog) SelectExercises(targetZones, injuries []string, level profile.ActivityLevel) []Exercise {
	out := make([]Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		if zoneMatch(targetZones, ex) && safeFor(injuries, ex) && levelMatch(level, ex) {
			out = append(out, ex)
		}
	}
	return out
}

func zoneMatch(targetZones []string, ex Exercise) bool {
	if len(targetZones) == 0 || slices.Contains(targetZones, profile.ZoneFullBody) {
		return true
	}
	return intersects(targetZones, ex.TargetZones)
}

func safeFor(injuries []string, ex Exercise) bool {
	return !intersects(injuries, ex.Contraindications)
}

func levelMatch(level profile.ActivityLevel, ex Exercise) bool {
	switch level {
	case profile.LevelSedentary:
		return ex.Difficulty == DifficultyBeginner
	case profile.LevelActive:
		return ex.Difficulty != DifficultyAdvanced
	default:
		return true
	}
}

// SelectProducts returns up to MaxProducts items: those tagged with one of
// the injuries first, then those carrying a general style label, deduplicated
// by id.
//
// exerciseIDs is accepted but not consulted. It was presumably meant to pull
// in each exercise's RelatedProductIDs; that cross-reference has never been
// applied, and callers rely on the current ordering.
func (c *Catalog) SelectProducts(injuries []string, exerciseIDs []string) []Product {
	candidates := make([]Product, 0, 2*len(c.products))
	for _, p := range c.products {
		if intersects(injuries, p.Tags) {
			candidates = append(candidates, p)
		}
	}
	for _, p := range c.products {
		if intersects(styleLabels, p.Tags) {
			candidates = append(candidates, p)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]Product, 0, MaxProducts)
	for _, p := range candidates {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
		if len(out) == MaxProducts {
			break
		}
	}
	return out
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}
