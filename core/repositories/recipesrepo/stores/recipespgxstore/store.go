// Package recipespgxstore persists recipes in PostgreSQL.
package recipespgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/jrazmi/crudkit/sdk/logger"
)

const columns = `id, name, description, servings, prep_time_minutes, rating, vegetarian, last_cooked_at, created_at, updated_at`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func where(filter recipesrepo.QueryFilter, args pgx.NamedArgs) []string {
	var conds []string
	if filter.Vegetarian != nil {
		conds = append(conds, "vegetarian = @vegetarian")
		args["vegetarian"] = *filter.Vegetarian
	}
	if filter.Search != nil && *filter.Search != "" {
		conds = append(conds, "name ILIKE @search")
		args["search"] = postgresdb.ContainsPattern(*filter.Search)
	}
	return conds
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func utc(r recipesrepo.Recipe) recipesrepo.Recipe {
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = utcPtr(r.UpdatedAt)
	r.LastCookedAt = utcPtr(r.LastCookedAt)
	return r
}

func collectOne(rows pgx.Rows) (recipesrepo.Recipe, error) {
	r, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[recipesrepo.Recipe])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recipesrepo.Recipe{}, repositories.ErrNotFound
		}
		return recipesrepo.Recipe{}, postgresdb.HandlePgError(err)
	}
	return utc(r), nil
}

func fields(r recipesrepo.Recipe) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":              r.Name,
		"description":       r.Description,
		"servings":          r.Servings,
		"prep_time_minutes": r.PrepTimeMinutes,
		"rating":            r.Rating,
		"vegetarian":        r.Vegetarian,
		"last_cooked_at":    r.LastCookedAt,
	}
}

func (s *Store) List(ctx context.Context, filter recipesrepo.QueryFilter, page fop.Page) ([]recipesrepo.Recipe, error) {
	args := pgx.NamedArgs{}
	buf := bytes.NewBufferString("SELECT " + columns + " FROM recipes")

	postgresdb.AddWhereClause(buf, where(filter, args))
	if err := postgresdb.AddOrderByClause(buf, "id", postgresdb.ASC); err != nil {
		return nil, err
	}
	postgresdb.AddOffsetLimitClause(page.Skip, page.Limit, page.Bounded(), args, buf)

	rows, err := s.pool.Query(ctx, buf.String(), args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	recipes, err := pgx.CollectRows(rows, pgx.RowToStructByName[recipesrepo.Recipe])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	for i := range recipes {
		recipes[i] = utc(recipes[i])
	}
	return recipes, nil
}

func (s *Store) Count(ctx context.Context, filter recipesrepo.QueryFilter) (int, error) {
	args := pgx.NamedArgs{}
	buf := bytes.NewBufferString("SELECT COUNT(*) FROM recipes")
	postgresdb.AddWhereClause(buf, where(filter, args))

	var n int
	if err := s.pool.QueryRow(ctx, buf.String(), args).Scan(&n); err != nil {
		return 0, postgresdb.HandlePgError(err)
	}
	return n, nil
}

func (s *Store) Get(ctx context.Context, id int) (recipesrepo.Recipe, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+columns+" FROM recipes WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return recipesrepo.Recipe{}, postgresdb.HandlePgError(err)
	}
	return collectOne(rows)
}

func (s *Store) Create(ctx context.Context, input recipesrepo.CreateRecipe) (recipesrepo.Recipe, error) {
	rows, err := s.pool.Query(ctx, `
		INSERT INTO recipes (name, description, servings, prep_time_minutes, rating, vegetarian, last_cooked_at)
		VALUES (@name, @description, @servings, @prep_time_minutes, @rating, @vegetarian, @last_cooked_at)
		RETURNING `+columns, fields(input.New(0, time.Time{})))
	if err != nil {
		return recipesrepo.Recipe{}, postgresdb.HandlePgError(err)
	}
	return collectOne(rows)
}

// Update locks the row, patches it and writes it back in one transaction.
func (s *Store) Update(ctx context.Context, id int, input recipesrepo.UpdateRecipe) (recipesrepo.Recipe, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return recipesrepo.Recipe{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, "SELECT "+columns+" FROM recipes WHERE id = @id FOR UPDATE", pgx.NamedArgs{"id": id})
	if err != nil {
		return recipesrepo.Recipe{}, postgresdb.HandlePgError(err)
	}
	current, err := collectOne(rows)
	if err != nil {
		return recipesrepo.Recipe{}, err
	}

	r, changed := input.Apply(current, time.Now().UTC())
	if !changed {
		return current, nil
	}

	args := fields(r)
	args["id"] = id
	args["updated_at"] = r.UpdatedAt

	rows, err = tx.Query(ctx, `
		UPDATE recipes
		SET name = @name, description = @description, servings = @servings,
			prep_time_minutes = @prep_time_minutes, rating = @rating, vegetarian = @vegetarian,
			last_cooked_at = @last_cooked_at, updated_at = @updated_at
		WHERE id = @id
		RETURNING `+columns, args)
	if err != nil {
		return recipesrepo.Recipe{}, postgresdb.HandlePgError(err)
	}
	updated, err := collectOne(rows)
	if err != nil {
		return recipesrepo.Recipe{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return recipesrepo.Recipe{}, fmt.Errorf("commit transaction: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM recipes WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
