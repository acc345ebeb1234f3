// Package todospgxstore persists todos in PostgreSQL.
package todospgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/jrazmi/crudkit/sdk/logger"
)

const columns = `id, title, time_estimate, completed, created_at, updated_at`

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

func where(filter todosrepo.QueryFilter, args pgx.NamedArgs) []string {
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

func utc(t todosrepo.Todo) todosrepo.Todo {
	t.CreatedAt = t.CreatedAt.UTC()
	if t.UpdatedAt != nil {
		u := t.UpdatedAt.UTC()
		t.UpdatedAt = &u
	}
	return t
}

func collectOne(rows pgx.Rows) (todosrepo.Todo, error) {
	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todosrepo.Todo{}, repositories.ErrNotFound
		}
		return todosrepo.Todo{}, mapError(err)
	}
	return utc(t), nil
}

func mapError(err error) error {
	err = postgresdb.HandlePgError(err)
	if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
		return repositories.ErrAlreadyExists
	}
	return err
}

func (s *Store) List(ctx context.Context, filter todosrepo.QueryFilter, page fop.Page) ([]todosrepo.Todo, error) {
	args := pgx.NamedArgs{}
	buf := bytes.NewBufferString("SELECT " + columns + " FROM todos")

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

	todos, err := pgx.CollectRows(rows, pgx.RowToStructByName[todosrepo.Todo])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	for i := range todos {
		todos[i] = utc(todos[i])
	}
	return todos, nil
}

func (s *Store) Count(ctx context.Context, filter todosrepo.QueryFilter) (int, error) {
	args := pgx.NamedArgs{}
	buf := bytes.NewBufferString("SELECT COUNT(*) FROM todos")
	postgresdb.AddWhereClause(buf, where(filter, args))

	var n int
	if err := s.pool.QueryRow(ctx, buf.String(), args).Scan(&n); err != nil {
		return 0, postgresdb.HandlePgError(err)
	}
	return n, nil
}

func (s *Store) Get(ctx context.Context, id int) (todosrepo.Todo, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+columns+" FROM todos WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	return collectOne(rows)
}

// Create inserts a todo. An explicit id advances the id sequence past it so
// generated ids never collide with it.
func (s *Store) Create(ctx context.Context, input todosrepo.CreateTodo) (todosrepo.Todo, error) {
	args := pgx.NamedArgs{
		"title":         input.Title,
		"time_estimate": input.TimeEstimate,
		"completed":     input.Completed,
	}

	if input.ID == nil {
		rows, err := s.pool.Query(ctx, `
			INSERT INTO todos (title, time_estimate, completed)
			VALUES (@title, @time_estimate, @completed)
			RETURNING `+columns, args)
		if err != nil {
			return todosrepo.Todo{}, mapError(err)
		}
		return collectOne(rows)
	}

	args["id"] = *input.ID

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return todosrepo.Todo{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		INSERT INTO todos (id, title, time_estimate, completed)
		VALUES (@id, @title, @time_estimate, @completed)
		RETURNING `+columns, args)
	if err != nil {
		return todosrepo.Todo{}, mapError(err)
	}
	todo, err := collectOne(rows)
	if err != nil {
		return todosrepo.Todo{}, err
	}

	if _, err := tx.Exec(ctx,
		`SELECT setval('todos_id_seq', GREATEST(@id, (SELECT last_value FROM todos_id_seq)))`,
		pgx.NamedArgs{"id": *input.ID}); err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return todosrepo.Todo{}, fmt.Errorf("commit transaction: %w", err)
	}
	return todo, nil
}

// Update locks the row, patches it and writes it back in one transaction.
func (s *Store) Update(ctx context.Context, id int, input todosrepo.UpdateTodo) (todosrepo.Todo, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return todosrepo.Todo{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, "SELECT "+columns+" FROM todos WHERE id = @id FOR UPDATE", pgx.NamedArgs{"id": id})
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	current, err := collectOne(rows)
	if err != nil {
		return todosrepo.Todo{}, err
	}

	t, changed := input.Apply(current, time.Now().UTC())
	if !changed {
		return current, nil
	}

	rows, err = tx.Query(ctx, `
		UPDATE todos
		SET title = @title, time_estimate = @time_estimate, completed = @completed, updated_at = @updated_at
		WHERE id = @id
		RETURNING `+columns, pgx.NamedArgs{
		"id":            id,
		"title":         t.Title,
		"time_estimate": t.TimeEstimate,
		"completed":     t.Completed,
		"updated_at":    t.UpdatedAt,
	})
	if err != nil {
		return todosrepo.Todo{}, postgresdb.HandlePgError(err)
	}
	updated, err := collectOne(rows)
	if err != nil {
		return todosrepo.Todo{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return todosrepo.Todo{}, fmt.Errorf("commit transaction: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM todos WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
