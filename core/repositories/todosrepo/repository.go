// Package todosrepo manages todo records.
package todosrepo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Resource is the display name used in messages.
const Resource = "Todo"

// Storer defines the data storage interface for Todo.
type Storer interface {
	repositories.Storer[Todo, CreateTodo, UpdateTodo, QueryFilter]
}

// Repository provides access to todo storage.
type Repository struct {
	repositories.Repository[Todo, CreateTodo, UpdateTodo, QueryFilter]
	log *logger.Logger
}

// NewRepository creates a new Todo repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		Repository: repositories.NewRepository[Todo, CreateTodo, UpdateTodo, QueryFilter](log, Resource, storer),
		log:        log,
	}
}

// Create stores a new todo. A caller supplied ID must be positive, unused,
// and leave room for the next generated id.
func (r *Repository) Create(ctx context.Context, input CreateTodo) (Todo, error) {
	if input.ID != nil && (*input.ID <= 0 || *input.ID == math.MaxInt) {
		return Todo{}, repositories.NewRecordError(Resource, *input.ID, repositories.ErrInvalidID)
	}

	todo, err := r.Repository.Create(ctx, input)
	if err != nil {
		if input.ID != nil && errors.Is(err, repositories.ErrAlreadyExists) {
			return Todo{}, repositories.NewRecordError(Resource, *input.ID, repositories.ErrAlreadyExists)
		}
		return Todo{}, err
	}
	return todo, nil
}

// Complete marks the stored todo as completed and returns it.
func (r *Repository) Complete(ctx context.Context, id int) (Todo, error) {
	completed := true
	todo, err := r.Update(ctx, id, UpdateTodo{Completed: &completed})
	if err != nil {
		return Todo{}, fmt.Errorf("complete: %w", err)
	}
	return todo, nil
}

// Seed inserts the given titles when the store holds no todos. It returns the
// number of records created.
func (r *Repository) Seed(ctx context.Context, titles ...string) (int, error) {
	n, err := r.Count(ctx, QueryFilter{})
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	for _, title := range titles {
		if _, err := r.Create(ctx, CreateTodo{Title: title}); err != nil {
			return 0, fmt.Errorf("seed %q: %w", title, err)
		}
	}
	r.log.InfoContext(ctx, "seeded todos", "count", len(titles))
	return len(titles), nil
}
