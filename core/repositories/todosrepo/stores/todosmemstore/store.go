// Package todosmemstore keeps todos in process memory.
package todosmemstore

import (
	"context"
	"errors"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/memstore"
)

type Store struct {
	mem *memstore.Store[todosrepo.Todo, todosrepo.CreateTodo, todosrepo.UpdateTodo, todosrepo.QueryFilter]
}

func NewStore(opts ...memstore.Option) *Store {
	adapter := memstore.Adapter[todosrepo.Todo, todosrepo.CreateTodo, todosrepo.UpdateTodo, todosrepo.QueryFilter]{
		ID: func(t todosrepo.Todo) int { return t.ID },
		New: func(id int, c todosrepo.CreateTodo, now time.Time) todosrepo.Todo {
			return c.New(id, now)
		},
		Apply: func(t todosrepo.Todo, u todosrepo.UpdateTodo, now time.Time) (todosrepo.Todo, bool) {
			return u.Apply(t, now)
		},
		Match: func(t todosrepo.Todo, f todosrepo.QueryFilter) bool {
			return f.Matches(t)
		},
		ExplicitID: func(c todosrepo.CreateTodo) (int, bool) {
			if c.ID == nil {
				return 0, false
			}
			return *c.ID, true
		},
	}
	return &Store{mem: memstore.New(adapter, opts...)}
}

func (s *Store) List(ctx context.Context, filter todosrepo.QueryFilter, page fop.Page) ([]todosrepo.Todo, error) {
	return s.mem.List(ctx, filter, page.Window)
}

func (s *Store) Count(ctx context.Context, filter todosrepo.QueryFilter) (int, error) {
	return s.mem.Count(ctx, filter)
}

func (s *Store) Get(ctx context.Context, id int) (todosrepo.Todo, error) {
	t, err := s.mem.Get(ctx, id)
	return t, mapError(err)
}

func (s *Store) Create(ctx context.Context, input todosrepo.CreateTodo) (todosrepo.Todo, error) {
	t, err := s.mem.Create(ctx, input)
	return t, mapError(err)
}

func (s *Store) Update(ctx context.Context, id int, input todosrepo.UpdateTodo) (todosrepo.Todo, error) {
	t, err := s.mem.Update(ctx, id, input)
	return t, mapError(err)
}

func (s *Store) Delete(ctx context.Context, id int) error {
	return mapError(s.mem.Delete(ctx, id))
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, memstore.ErrNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, memstore.ErrDuplicateID):
		return repositories.ErrAlreadyExists
	}
	return err
}
