// Package taskspgxstore persists tasks in PostgreSQL.
package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/jrazmi/crudkit/sdk/logger"
)

const columns = `id, title, description, completed, created_at, updated_at`

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

func where(filter tasksrepo.QueryFilter, args pgx.NamedArgs) []string {
	var conds []string
	if filter.Completed != nil {
		conds = append(conds, "completed = @completed")
		args["completed"] = *filter.Completed
	}
	if filter.Search != nil && *filter.Search != "" {
		conds = append(conds, "title ILIKE @search")
		args["search"] = postgresdb.ContainsPattern(*filter.Search)
	}
	return conds
}

func utc(t tasksrepo.Task) tasksrepo.Task {
	t.CreatedAt = t.CreatedAt.UTC()
	if t.UpdatedAt != nil {
		u := t.UpdatedAt.UTC()
		t.UpdatedAt = &u
	}
	return t
}

func collectOne(rows pgx.Rows) (tasksrepo.Task, error) {
	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, repositories.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return utc(t), nil
}

func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, error) {
	args := pgx.NamedArgs{}
	buf := bytes.NewBufferString("SELECT " + columns + " FROM tasks")

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

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	for i := range tasks {
		tasks[i] = utc(tasks[i])
	}
	return tasks, nil
}

func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	args := pgx.NamedArgs{}
	buf := bytes.NewBufferString("SELECT COUNT(*) FROM tasks")
	postgresdb.AddWhereClause(buf, where(filter, args))

	var n int
	if err := s.pool.QueryRow(ctx, buf.String(), args).Scan(&n); err != nil {
		return 0, postgresdb.HandlePgError(err)
	}
	return n, nil
}

func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+columns+" FROM tasks WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return collectOne(rows)
}

func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	rows, err := s.pool.Query(ctx, `
		INSERT INTO tasks (title, description, completed)
		VALUES (@title, @description, @completed)
		RETURNING `+columns, pgx.NamedArgs{
		"title":       input.Title,
		"description": input.Description,
		"completed":   input.Completed,
	})
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return collectOne(rows)
}

// Update locks the row, patches it and writes it back in one transaction.
func (s *Store) Update(ctx context.Context, id int, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, "SELECT "+columns+" FROM tasks WHERE id = @id FOR UPDATE", pgx.NamedArgs{"id": id})
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	current, err := collectOne(rows)
	if err != nil {
		return tasksrepo.Task{}, err
	}

	t, changed := input.Apply(current, time.Now().UTC())
	if !changed {
		return current, nil
	}

	rows, err = tx.Query(ctx, `
		UPDATE tasks
		SET title = @title, description = @description, completed = @completed, updated_at = @updated_at
		WHERE id = @id
		RETURNING `+columns, pgx.NamedArgs{
		"id":          id,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"updated_at":  t.UpdatedAt,
	})
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	updated, err := collectOne(rows)
	if err != nil {
		return tasksrepo.Task{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return tasksrepo.Task{}, fmt.Errorf("commit transaction: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM tasks WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
