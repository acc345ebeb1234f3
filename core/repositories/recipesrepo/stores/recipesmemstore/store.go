// Package recipesmemstore keeps recipes in process memory.
package recipesmemstore

import (
	"context"
	"errors"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/memstore"
)

type Store struct {
	mem *memstore.Store[recipesrepo.Recipe, recipesrepo.CreateRecipe, recipesrepo.UpdateRecipe, recipesrepo.QueryFilter]
}

func NewStore(opts ...memstore.Option) *Store {
	adapter := memstore.Adapter[recipesrepo.Recipe, recipesrepo.CreateRecipe, recipesrepo.UpdateRecipe, recipesrepo.QueryFilter]{
		ID: func(r recipesrepo.Recipe) int { return r.ID },
		New: func(id int, c recipesrepo.CreateRecipe, now time.Time) recipesrepo.Recipe {
			return c.New(id, now)
		},
		Apply: func(r recipesrepo.Recipe, u recipesrepo.UpdateRecipe, now time.Time) (recipesrepo.Recipe, bool) {
			return u.Apply(r, now)
		},
		Match: func(r recipesrepo.Recipe, f recipesrepo.QueryFilter) bool {
			return f.Matches(r)
		},
	}
	return &Store{mem: memstore.New(adapter, opts...)}
}

func (s *Store) List(ctx context.Context, filter recipesrepo.QueryFilter, page fop.Page) ([]recipesrepo.Recipe, error) {
	return s.mem.List(ctx, filter, page.Window)
}

func (s *Store) Count(ctx context.Context, filter recipesrepo.QueryFilter) (int, error) {
	return s.mem.Count(ctx, filter)
}

func (s *Store) Get(ctx context.Context, id int) (recipesrepo.Recipe, error) {
	r, err := s.mem.Get(ctx, id)
	return r, mapError(err)
}

func (s *Store) Create(ctx context.Context, input recipesrepo.CreateRecipe) (recipesrepo.Recipe, error) {
	return s.mem.Create(ctx, input)
}

func (s *Store) Update(ctx context.Context, id int, input recipesrepo.UpdateRecipe) (recipesrepo.Recipe, error) {
	r, err := s.mem.Update(ctx, id, input)
	return r, mapError(err)
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
