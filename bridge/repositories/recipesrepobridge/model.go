package recipesrepobridge

import (
	"time"

	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/sdk/validation"
)

// CreateRecipeInput is the create payload. last_cooked_at is RFC 3339.
type CreateRecipeInput struct {
	Name            *string    `json:"name" validate:"required"`
	Description     *string    `json:"description"`
	Servings        *int       `json:"servings" validate:"omitempty,gte=1"`
	PrepTimeMinutes *int       `json:"prep_time_minutes" validate:"omitempty,gte=0"`
	Rating          *float64   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Vegetarian      *bool      `json:"vegetarian"`
	LastCookedAt    *time.Time `json:"last_cooked_at"`
}

func (c CreateRecipeInput) Validate() error {
	return validation.Check(c)
}

func (c CreateRecipeInput) toRepository() recipesrepo.CreateRecipe {
	return recipesrepo.CreateRecipe{
		Name:            validation.GetStringOrEmpty(c.Name),
		Description:     c.Description,
		Servings:        c.Servings,
		PrepTimeMinutes: c.PrepTimeMinutes,
		Rating:          c.Rating,
		Vegetarian:      validation.GetBoolOrFalse(c.Vegetarian),
		LastCookedAt:    c.LastCookedAt,
	}
}

// UpdateRecipeInput is a partial update. Absent and null fields are left alone.
type UpdateRecipeInput struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Description     *string    `json:"description"`
	Servings        *int       `json:"servings" validate:"omitempty,gte=1"`
	PrepTimeMinutes *int       `json:"prep_time_minutes" validate:"omitempty,gte=0"`
	Rating          *float64   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Vegetarian      *bool      `json:"vegetarian"`
	LastCookedAt    *time.Time `json:"last_cooked_at"`
}

func (u UpdateRecipeInput) Validate() error {
	return validation.Check(u)
}

func (u UpdateRecipeInput) toRepository() recipesrepo.UpdateRecipe {
	return recipesrepo.UpdateRecipe{
		Name:            u.Name,
		Description:     u.Description,
		Servings:        u.Servings,
		PrepTimeMinutes: u.PrepTimeMinutes,
		Rating:          u.Rating,
		Vegetarian:      u.Vegetarian,
		LastCookedAt:    u.LastCookedAt,
	}
}
