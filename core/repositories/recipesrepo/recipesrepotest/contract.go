// Package recipesrepotest holds the behaviour every recipe store must share.
package recipesrepotest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// Run exercises a fresh, empty store through the Repository.
func Run(t *testing.T, storer recipesrepo.Storer) {
	ctx := context.Background()
	repo := recipesrepo.NewRepository(logger.NewDiscard(), storer)

	cooked := time.Date(2026, 4, 20, 18, 30, 0, 0, time.UTC)
	var risotto recipesrepo.Recipe

	t.Run("create keeps every field type", func(t *testing.T) {
		var err error
		risotto, err = repo.Create(ctx, recipesrepo.CreateRecipe{
			Name:            "Mushroom Risotto",
			Description:     ptr("creamy"),
			Servings:        ptr(4),
			PrepTimeMinutes: ptr(45),
			Rating:          ptr(4.5),
			Vegetarian:      true,
			LastCookedAt:    &cooked,
		})
		require.NoError(t, err)
		assert.Positive(t, risotto.ID)
		assert.Equal(t, 4, *risotto.Servings)
		assert.Equal(t, 45, *risotto.PrepTimeMinutes)
		assert.InDelta(t, 4.5, *risotto.Rating, 1e-9)
		assert.True(t, risotto.Vegetarian)
		require.NotNil(t, risotto.LastCookedAt)
		assert.True(t, cooked.Equal(*risotto.LastCookedAt))

		got, err := repo.Get(ctx, risotto.ID)
		require.NoError(t, err)
		assert.Equal(t, risotto, got)
	})

	t.Run("create applies defaults", func(t *testing.T) {
		stew, err := repo.Create(ctx, recipesrepo.CreateRecipe{Name: "Beef Stew"})
		require.NoError(t, err)
		assert.Greater(t, stew.ID, risotto.ID)
		assert.Nil(t, stew.Description)
		assert.Nil(t, stew.Servings)
		assert.Nil(t, stew.Rating)
		assert.Nil(t, stew.LastCookedAt)
		assert.False(t, stew.Vegetarian)
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := repo.Update(ctx, risotto.ID, recipesrepo.UpdateRecipe{})
		require.NoError(t, err)
		assert.Equal(t, risotto, got)

		got, err = repo.Update(ctx, risotto.ID, recipesrepo.UpdateRecipe{Servings: ptr(6)})
		require.NoError(t, err)
		assert.Equal(t, 6, *got.Servings)
		assert.Equal(t, risotto.Name, got.Name)
		assert.InDelta(t, 4.5, *got.Rating, 1e-9)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("filters", func(t *testing.T) {
		veg, err := repo.List(ctx, recipesrepo.QueryFilter{Vegetarian: ptr(true)}, fop.All)
		require.NoError(t, err)
		require.Len(t, veg, 1)
		assert.Equal(t, risotto.ID, veg[0].ID)

		found, err := repo.List(ctx, recipesrepo.QueryFilter{Search: ptr("stew")}, fop.All)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Beef Stew", found[0].Name)

		n, err := repo.Count(ctx, recipesrepo.QueryFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		tail, err := repo.List(ctx, recipesrepo.QueryFilter{}, fop.Page{Skip: 1, Limit: fop.NoLimit})
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.Equal(t, "Beef Stew", tail[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, risotto.ID))

		_, err := repo.Get(ctx, risotto.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.EqualError(t, repo.Delete(ctx, risotto.ID), fmt.Sprintf("Recipe repository delete: Recipe with ID %d not found", risotto.ID))
	})
}
