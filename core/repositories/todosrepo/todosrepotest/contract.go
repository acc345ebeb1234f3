// Package todosrepotest holds the behaviour every todo store must share.
package todosrepotest

import (
	"context"
	"math"
	"testing"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// Run exercises a fresh, empty store through the Repository.
func Run(t *testing.T, storer todosrepo.Storer) {
	ctx := context.Background()
	repo := todosrepo.NewRepository(logger.NewDiscard(), storer)

	var first todosrepo.Todo

	t.Run("create assigns id and defaults", func(t *testing.T) {
		var err error
		first, err = repo.Create(ctx, todosrepo.CreateTodo{Title: "Test task"})
		require.NoError(t, err)
		assert.Positive(t, first.ID)
		assert.Equal(t, "Test task", first.Title)
		assert.False(t, first.Completed)
		assert.Nil(t, first.TimeEstimate)
		assert.False(t, first.CreatedAt.IsZero())
		assert.Nil(t, first.UpdatedAt)

		got, err := repo.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("explicit id", func(t *testing.T) {
		todo, err := repo.Create(ctx, todosrepo.CreateTodo{ID: ptr(100), Title: "Learn Docker"})
		require.NoError(t, err)
		assert.Equal(t, 100, todo.ID)

		_, err = repo.Create(ctx, todosrepo.CreateTodo{ID: ptr(100), Title: "Learn Docker"})
		require.ErrorIs(t, err, repositories.ErrAlreadyExists)
		assert.EqualError(t, err, "Todo with ID 100 already exists")

		_, err = repo.Create(ctx, todosrepo.CreateTodo{ID: ptr(0), Title: "zero"})
		require.ErrorIs(t, err, repositories.ErrInvalidID)
		assert.EqualError(t, err, "ID 0 is not allowed")

		_, err = repo.Create(ctx, todosrepo.CreateTodo{ID: ptr(math.MaxInt), Title: "no room after"})
		require.ErrorIs(t, err, repositories.ErrInvalidID)

		next, err := repo.Create(ctx, todosrepo.CreateTodo{Title: "after explicit"})
		require.NoError(t, err)
		assert.Greater(t, next.ID, 100)

		got, err := repo.Get(ctx, next.ID)
		require.NoError(t, err)
		assert.Equal(t, next, got)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		last, err := repo.Create(ctx, todosrepo.CreateTodo{Title: "doomed"})
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, last.ID))

		_, err = repo.Get(ctx, last.ID)
		require.ErrorIs(t, err, repositories.ErrNotFound)

		fresh, err := repo.Create(ctx, todosrepo.CreateTodo{Title: "fresh"})
		require.NoError(t, err)
		assert.Greater(t, fresh.ID, last.ID)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		got, err := repo.Update(ctx, first.ID, todosrepo.UpdateTodo{})
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("single field update keeps the rest", func(t *testing.T) {
		got, err := repo.Update(ctx, first.ID, todosrepo.UpdateTodo{TimeEstimate: ptr(30)})
		require.NoError(t, err)
		require.NotNil(t, got.TimeEstimate)
		assert.Equal(t, 30, *got.TimeEstimate)
		assert.Equal(t, first.Title, got.Title)
		assert.Equal(t, first.Completed, got.Completed)
		assert.Equal(t, first.CreatedAt, got.CreatedAt)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("complete", func(t *testing.T) {
		got, err := repo.Complete(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.Equal(t, "Test task", got.Title)

		_, err = repo.Complete(ctx, 9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("missing records", func(t *testing.T) {
		_, err := repo.Get(ctx, 9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = repo.Update(ctx, 9999, todosrepo.UpdateTodo{Title: ptr("x")})
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, 9999), repositories.ErrNotFound)
	})

	t.Run("filters and windows", func(t *testing.T) {
		cafe, err := repo.Create(ctx, todosrepo.CreateTodo{Title: "Café CRÈME"})
		require.NoError(t, err)

		accented, err := repo.List(ctx, todosrepo.QueryFilter{Search: ptr("café crème")}, fop.All)
		require.NoError(t, err)
		require.Len(t, accented, 1)
		assert.Equal(t, cafe.ID, accented[0].ID)

		all, err := repo.List(ctx, todosrepo.QueryFilter{}, fop.All)
		require.NoError(t, err)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		done, err := repo.List(ctx, todosrepo.QueryFilter{Completed: ptr(true)}, fop.All)
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, first.ID, done[0].ID)

		found, err := repo.List(ctx, todosrepo.QueryFilter{Search: ptr("DOCKER")}, fop.All)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Learn Docker", found[0].Title)

		n, err := repo.Count(ctx, todosrepo.QueryFilter{})
		require.NoError(t, err)
		assert.Equal(t, len(all), n)

		window, err := repo.List(ctx, todosrepo.QueryFilter{}, fop.Page{Skip: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, window, 1)
		assert.Equal(t, all[1].ID, window[0].ID)

		empty, err := repo.List(ctx, todosrepo.QueryFilter{}, fop.Page{Skip: 500, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, empty)
		assert.NotNil(t, empty)
	})
}

// RunSeed checks that seeding only touches an empty store.
func RunSeed(t *testing.T, storer todosrepo.Storer) {
	ctx := context.Background()
	repo := todosrepo.NewRepository(logger.NewDiscard(), storer)

	n, err := repo.Seed(ctx, "Learn Docker", "Build a Docker Image")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.Seed(ctx, "Learn Docker", "Build a Docker Image")
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.List(ctx, todosrepo.QueryFilter{}, fop.All)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Build a Docker Image", all[1].Title)
}
