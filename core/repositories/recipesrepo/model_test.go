package recipesrepo_test

import (
	"testing"
	"time"

	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateRecipeApply(t *testing.T) {
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	now := created.Add(24 * time.Hour)
	cooked := time.Date(2026, 4, 20, 18, 30, 0, 0, time.UTC)

	recipe := recipesrepo.CreateRecipe{
		Name:         "Pad Thai",
		Servings:     ptr(2),
		Rating:       ptr(4.5),
		LastCookedAt: &cooked,
	}.New(3, created)

	t.Run("identical values do not touch updated_at", func(t *testing.T) {
		sameInstant := cooked.In(time.FixedZone("ict", 7*3600))
		got, changed := recipesrepo.UpdateRecipe{
			Name:         ptr("Pad Thai"),
			Servings:     ptr(2),
			Rating:       ptr(4.5),
			LastCookedAt: &sameInstant,
		}.Apply(recipe, now)
		assert.False(t, changed)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("every kind of field", func(t *testing.T) {
		later := cooked.Add(72 * time.Hour)
		got, changed := recipesrepo.UpdateRecipe{
			Description:     ptr("noodles"),
			PrepTimeMinutes: ptr(25),
			Rating:          ptr(5.0),
			Vegetarian:      ptr(true),
			LastCookedAt:    &later,
		}.Apply(recipe, now)

		assert.True(t, changed)
		assert.Equal(t, "Pad Thai", got.Name)
		assert.Equal(t, "noodles", *got.Description)
		assert.Equal(t, 25, *got.PrepTimeMinutes)
		assert.Equal(t, 5.0, *got.Rating)
		assert.True(t, got.Vegetarian)
		assert.True(t, later.Equal(*got.LastCookedAt))
		assert.Equal(t, now, *got.UpdatedAt)
		assert.Equal(t, 4.5, *recipe.Rating)
	})
}

func TestQueryFilterMatches(t *testing.T) {
	recipe := recipesrepo.Recipe{Name: "Mushroom Risotto", Vegetarian: true}

	assert.True(t, recipesrepo.QueryFilter{Search: ptr("risotto")}.Matches(recipe))
	assert.True(t, recipesrepo.QueryFilter{Vegetarian: ptr(true)}.Matches(recipe))
	assert.False(t, recipesrepo.QueryFilter{Vegetarian: ptr(false)}.Matches(recipe))
	assert.False(t, recipesrepo.QueryFilter{Search: ptr("beef")}.Matches(recipe))
}
