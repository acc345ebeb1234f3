// Package tasksrepotest holds the behaviour every task store must share.
package tasksrepotest

import (
	"context"
	"testing"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// Run exercises a fresh, empty store through the Repository.
func Run(t *testing.T, storer tasksrepo.Storer) {
	ctx := context.Background()
	repo := tasksrepo.NewRepository(logger.NewDiscard(), storer)

	var first tasksrepo.Task

	t.Run("create", func(t *testing.T) {
		var err error
		first, err = repo.Create(ctx, tasksrepo.CreateTask{Title: "Write docs"})
		require.NoError(t, err)
		assert.Positive(t, first.ID)
		assert.Nil(t, first.Description)
		assert.False(t, first.Completed)
		assert.Nil(t, first.UpdatedAt)

		got, err := repo.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		second, err := repo.Create(ctx, tasksrepo.CreateTask{Title: "Ship release", Description: ptr("v1.2"), Completed: true})
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
		require.NotNil(t, second.Description)
		assert.Equal(t, "v1.2", *second.Description)
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := repo.Update(ctx, first.ID, tasksrepo.UpdateTask{})
		require.NoError(t, err)
		assert.Equal(t, first, got)

		got, err = repo.Update(ctx, first.ID, tasksrepo.UpdateTask{Description: ptr("api section")})
		require.NoError(t, err)
		assert.Equal(t, "Write docs", got.Title)
		require.NotNil(t, got.Description)
		assert.Equal(t, "api section", *got.Description)
		assert.NotNil(t, got.UpdatedAt)
		assert.Equal(t, first.CreatedAt, got.CreatedAt)
	})

	t.Run("filters", func(t *testing.T) {
		done, err := repo.List(ctx, tasksrepo.QueryFilter{Completed: ptr(true)}, fop.All)
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, "Ship release", done[0].Title)

		found, err := repo.List(ctx, tasksrepo.QueryFilter{Search: ptr("DOCS")}, fop.All)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, first.ID, found[0].ID)

		n, err := repo.Count(ctx, tasksrepo.QueryFilter{Completed: ptr(false)})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		page, err := repo.List(ctx, tasksrepo.QueryFilter{}, fop.Page{Skip: 0, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, first.ID, page[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID))

		_, err := repo.Get(ctx, first.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), repositories.ErrNotFound)

		_, err = repo.Update(ctx, first.ID, tasksrepo.UpdateTask{Title: ptr("x")})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
