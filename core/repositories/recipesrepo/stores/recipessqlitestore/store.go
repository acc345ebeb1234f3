// Package recipessqlitestore persists recipes in SQLite.
package recipessqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/sqlitedb"
	"github.com/jrazmi/crudkit/sdk/logger"
)

const columns = `id, name, description, servings, prep_time_minutes, rating, vegetarian, last_cooked_at, created_at, updated_at`

type Store struct {
	log *logger.Logger
	db  *sql.DB
	now func() time.Time
}

func NewStore(log *logger.Logger, db *sql.DB) *Store {
	return &Store{
		log: log,
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func scan(row scanner) (recipesrepo.Recipe, error) {
	var r recipesrepo.Recipe
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Servings, &r.PrepTimeMinutes,
		&r.Rating, &r.Vegetarian, &r.LastCookedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return recipesrepo.Recipe{}, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = utcPtr(r.UpdatedAt)
	r.LastCookedAt = utcPtr(r.LastCookedAt)
	return r, nil
}

func where(filter recipesrepo.QueryFilter) ([]string, []any) {
	var conds []string
	var args []any

	if filter.Vegetarian != nil {
		conds = append(conds, "vegetarian = ?")
		args = append(args, *filter.Vegetarian)
	}
	if filter.Search != nil && *filter.Search != "" {
		conds = append(conds, sqlitedb.ContainsClause("name"))
		args = append(args, sqlitedb.ContainsPattern(*filter.Search))
	}
	return conds, args
}

func (s *Store) List(ctx context.Context, filter recipesrepo.QueryFilter, page fop.Page) ([]recipesrepo.Recipe, error) {
	var buf strings.Builder
	buf.WriteString("SELECT " + columns + " FROM recipes")

	conds, args := where(filter)
	sqlitedb.AddWhereClause(&buf, conds)
	buf.WriteString(" ORDER BY id ASC")
	args = sqlitedb.AddOffsetLimitClause(&buf, args, page.Skip, page.Limit, page.Bounded())

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, sqlitedb.HandleError(err)
	}
	defer rows.Close()

	recipes := make([]recipesrepo.Recipe, 0)
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

func (s *Store) Count(ctx context.Context, filter recipesrepo.QueryFilter) (int, error) {
	var buf strings.Builder
	buf.WriteString("SELECT COUNT(*) FROM recipes")

	conds, args := where(filter)
	sqlitedb.AddWhereClause(&buf, conds)

	var n int
	if err := s.db.QueryRowContext(ctx, buf.String(), args...).Scan(&n); err != nil {
		return 0, sqlitedb.HandleError(err)
	}
	return n, nil
}

func (s *Store) Get(ctx context.Context, id int) (recipesrepo.Recipe, error) {
	return get(ctx, s.db, id)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, q querier, id int) (recipesrepo.Recipe, error) {
	r, err := scan(q.QueryRowContext(ctx, "SELECT "+columns+" FROM recipes WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recipesrepo.Recipe{}, repositories.ErrNotFound
		}
		return recipesrepo.Recipe{}, sqlitedb.HandleError(err)
	}
	return r, nil
}

func (s *Store) Create(ctx context.Context, input recipesrepo.CreateRecipe) (recipesrepo.Recipe, error) {
	r := input.New(0, s.now())

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (name, description, servings, prep_time_minutes, rating, vegetarian, last_cooked_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Name, r.Description, r.Servings, r.PrepTimeMinutes, r.Rating, r.Vegetarian, r.LastCookedAt, r.CreatedAt)
	if err != nil {
		return recipesrepo.Recipe{}, sqlitedb.HandleError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return recipesrepo.Recipe{}, fmt.Errorf("last insert id: %w", err)
	}
	return get(ctx, s.db, int(id))
}

func (s *Store) Update(ctx context.Context, id int, input recipesrepo.UpdateRecipe) (recipesrepo.Recipe, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return recipesrepo.Recipe{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := get(ctx, tx, id)
	if err != nil {
		return recipesrepo.Recipe{}, err
	}

	r, changed := input.Apply(current, s.now())
	if !changed {
		return current, nil
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE recipes
		SET name = ?, description = ?, servings = ?, prep_time_minutes = ?, rating = ?,
			vegetarian = ?, last_cooked_at = ?, updated_at = ?
		WHERE id = ?`,
		r.Name, r.Description, r.Servings, r.PrepTimeMinutes, r.Rating,
		r.Vegetarian, r.LastCookedAt, r.UpdatedAt, id)
	if err != nil {
		return recipesrepo.Recipe{}, sqlitedb.HandleError(err)
	}

	if err := tx.Commit(); err != nil {
		return recipesrepo.Recipe{}, fmt.Errorf("commit transaction: %w", err)
	}
	return get(ctx, s.db, id)
}

func (s *Store) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return sqlitedb.HandleError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
