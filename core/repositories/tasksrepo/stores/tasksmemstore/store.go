// Package tasksmemstore keeps tasks in process memory.
package tasksmemstore

import (
	"context"
	"errors"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/memstore"
)

type Store struct {
	mem *memstore.Store[tasksrepo.Task, tasksrepo.CreateTask, tasksrepo.UpdateTask, tasksrepo.QueryFilter]
}

func NewStore(opts ...memstore.Option) *Store {
	adapter := memstore.Adapter[tasksrepo.Task, tasksrepo.CreateTask, tasksrepo.UpdateTask, tasksrepo.QueryFilter]{
		ID: func(t tasksrepo.Task) int { return t.ID },
		New: func(id int, c tasksrepo.CreateTask, now time.Time) tasksrepo.Task {
			return c.New(id, now)
		},
		Apply: func(t tasksrepo.Task, u tasksrepo.UpdateTask, now time.Time) (tasksrepo.Task, bool) {
			return u.Apply(t, now)
		},
		Match: func(t tasksrepo.Task, f tasksrepo.QueryFilter) bool {
			return f.Matches(t)
		},
	}
	return &Store{mem: memstore.New(adapter, opts...)}
}

func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, error) {
	return s.mem.List(ctx, filter, page.Window)
}

func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	return s.mem.Count(ctx, filter)
}

func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	t, err := s.mem.Get(ctx, id)
	return t, mapError(err)
}

func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	return s.mem.Create(ctx, input)
}

func (s *Store) Update(ctx context.Context, id int, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	t, err := s.mem.Update(ctx, id, input)
	return t, mapError(err)
}

func (s *Store) Delete(ctx context.Context, id int) error {
	return mapError(s.mem.Delete(ctx, id))
}

func mapError(err error) error {
	if errors.Is(err, memstore.ErrNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
