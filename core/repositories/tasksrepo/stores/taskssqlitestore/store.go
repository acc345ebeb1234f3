// Package taskssqlitestore persists tasks in SQLite.
package taskssqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/sqlitedb"
	"github.com/jrazmi/crudkit/sdk/logger"
)

const columns = `id, title, description, completed, created_at, updated_at`

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

func scan(row scanner) (tasksrepo.Task, error) {
	var t tasksrepo.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return tasksrepo.Task{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	if t.UpdatedAt != nil {
		u := t.UpdatedAt.UTC()
		t.UpdatedAt = &u
	}
	return t, nil
}

func where(filter tasksrepo.QueryFilter) ([]string, []any) {
	var conds []string
	var args []any

	if filter.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.Search != nil && *filter.Search != "" {
		conds = append(conds, sqlitedb.ContainsClause("title"))
		args = append(args, sqlitedb.ContainsPattern(*filter.Search))
	}
	return conds, args
}

func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, page fop.Page) ([]tasksrepo.Task, error) {
	var buf strings.Builder
	buf.WriteString("SELECT " + columns + " FROM tasks")

	conds, args := where(filter)
	sqlitedb.AddWhereClause(&buf, conds)
	buf.WriteString(" ORDER BY id ASC")
	args = sqlitedb.AddOffsetLimitClause(&buf, args, page.Skip, page.Limit, page.Bounded())

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, sqlitedb.HandleError(err)
	}
	defer rows.Close()

	tasks := make([]tasksrepo.Task, 0)
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	var buf strings.Builder
	buf.WriteString("SELECT COUNT(*) FROM tasks")

	conds, args := where(filter)
	sqlitedb.AddWhereClause(&buf, conds)

	var n int
	if err := s.db.QueryRowContext(ctx, buf.String(), args...).Scan(&n); err != nil {
		return 0, sqlitedb.HandleError(err)
	}
	return n, nil
}

func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	return get(ctx, s.db, id)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, q querier, id int) (tasksrepo.Task, error) {
	t, err := scan(q.QueryRowContext(ctx, "SELECT "+columns+" FROM tasks WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tasksrepo.Task{}, repositories.ErrNotFound
		}
		return tasksrepo.Task{}, sqlitedb.HandleError(err)
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	t := input.New(0, s.now())

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, completed, created_at) VALUES (?, ?, ?, ?)`,
		t.Title, t.Description, t.Completed, t.CreatedAt)
	if err != nil {
		return tasksrepo.Task{}, sqlitedb.HandleError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("last insert id: %w", err)
	}
	return get(ctx, s.db, int(id))
}

func (s *Store) Update(ctx context.Context, id int, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := get(ctx, tx, id)
	if err != nil {
		return tasksrepo.Task{}, err
	}

	t, changed := input.Apply(current, s.now())
	if !changed {
		return current, nil
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ? WHERE id = ?`,
		t.Title, t.Description, t.Completed, t.UpdatedAt, id)
	if err != nil {
		return tasksrepo.Task{}, sqlitedb.HandleError(err)
	}

	if err := tx.Commit(); err != nil {
		return tasksrepo.Task{}, fmt.Errorf("commit transaction: %w", err)
	}
	return get(ctx, s.db, id)
}

func (s *Store) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
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
