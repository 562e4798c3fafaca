// Package catalog holds the read-only exercise and equipment tables and the
// pure filters that turn a profile into recommendations.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty grades an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a catalog entry.
type Exercise struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Difficulty        Difficulty `json:"difficulty"`
	TargetZones       []string   `json:"targetZones"`
	SafetyTips        []string   `json:"safetyTips"`
	DoList            []string   `json:"doList"`
	DontList          []string   `json:"dontList"`
	Duration          string     `json:"duration"`
	Reps              string     `json:"reps"`
	Contraindications []string   `json:"contraindications"`
	RelatedProductIDs []string   `json:"relatedProductIds"`
	ImageURL          string     `json:"imageUrl"`
}

// Product is a piece of equipment that can be recommended.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ShopURL     string   `json:"shopUrl"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// ErrExerciseNotFound indicates the entity does not exist.
var ErrExerciseNotFound = errors.New("exercise not found")

// Catalog is an immutable pair of tables. Callers must treat returned
// records as read-only.
type Catalog struct {
	exercises []Exercise
	products  []Product
}

// New validates and wraps the tables. Declaration order is preserved.
func New(exercises []Exercise, products []Product) (*Catalog, error) {
	seen := make(map[string]struct{}, len(exercises))
	for _, ex := range exercises {
		if strings.TrimSpace(ex.ID) == "" {
			return nil, errors.New("exercise id is required")
		}
		if _, dup := seen[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		switch ex.Difficulty {
		case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		default:
			return nil, fmt.Errorf("exercise %s: unknown difficulty %q", ex.ID, ex.Difficulty)
		}
		seen[ex.ID] = struct{}{}
	}
	seen = make(map[string]struct{}, len(products))
	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, errors.New("product id is required")
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return &Catalog{
		exercises: append([]Exercise(nil), exercises...),
		products:  append([]Product(nil), products...),
	}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtinExercises, builtinProducts)
	if err != nil {
		panic(err)
	}
	return c
}

// Exercises returns every exercise in declaration order.
func (c *Catalog) Exercises() []Exercise {
	return append([]Exercise(nil), c.exercises...)
}

// Products returns every product in declaration order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Exercise looks up one exercise by id.
func (c *Catalog) Exercise(id string) (Exercise, error) {
	for _, ex := range c.exercises {
		if ex.ID == id {
			return ex, nil
		}
	}
	return Exercise{}, ErrExerciseNotFound
}
