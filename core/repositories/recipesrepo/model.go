package recipesrepo

import (
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
)

// Recipe is a named dish. Servings, prep time and rating are optional.
type Recipe struct {
	ID              int        `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Description     *string    `json:"description" db:"description"`
	Servings        *int       `json:"servings" db:"servings"`
	PrepTimeMinutes *int       `json:"prep_time_minutes" db:"prep_time_minutes"`
	Rating          *float64   `json:"rating" db:"rating"`
	Vegetarian      bool       `json:"vegetarian" db:"vegetarian"`
	LastCookedAt    *time.Time `json:"last_cooked_at" db:"last_cooked_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at" db:"updated_at"`
}

// CreateRecipe contains fields for creating a new recipe.
type CreateRecipe struct {
	Name            string
	Description     *string
	Servings        *int
	PrepTimeMinutes *int
	Rating          *float64
	Vegetarian      bool
	LastCookedAt    *time.Time
}

// UpdateRecipe contains fields for updating an existing recipe.
// All fields are optional (pointers) to support partial updates.
type UpdateRecipe struct {
	Name            *string
	Description     *string
	Servings        *int
	PrepTimeMinutes *int
	Rating          *float64
	Vegetarian      *bool
	LastCookedAt    *time.Time
}

func (c CreateRecipe) New(id int, now time.Time) Recipe {
	r := Recipe{
		ID:              id,
		Name:            c.Name,
		Description:     c.Description,
		Servings:        c.Servings,
		PrepTimeMinutes: c.PrepTimeMinutes,
		Rating:          c.Rating,
		Vegetarian:      c.Vegetarian,
		CreatedAt:       now,
	}
	if c.LastCookedAt != nil {
		at := c.LastCookedAt.UTC()
		r.LastCookedAt = &at
	}
	return r
}

// Apply patches r with the non-nil fields of u and reports whether anything
// changed.
func (u UpdateRecipe) Apply(r Recipe, now time.Time) (Recipe, bool) {
	changed := repositories.SetIfChanged(&r.Name, u.Name)
	changed = repositories.SetPtrIfChanged(&r.Description, u.Description) || changed
	changed = repositories.SetPtrIfChanged(&r.Servings, u.Servings) || changed
	changed = repositories.SetPtrIfChanged(&r.PrepTimeMinutes, u.PrepTimeMinutes) || changed
	changed = repositories.SetPtrIfChanged(&r.Rating, u.Rating) || changed
	changed = repositories.SetIfChanged(&r.Vegetarian, u.Vegetarian) || changed
	changed = repositories.SetTimeIfChanged(&r.LastCookedAt, u.LastCookedAt) || changed

	if changed {
		r.UpdatedAt = &now
	}
	return r, changed
}
