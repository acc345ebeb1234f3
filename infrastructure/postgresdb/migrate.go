package postgresdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/crudkit/schema"
)

// Migrate runs all pending migrations from schema/pgmigrations.
// Already-applied migrations are tracked in the schema_migrations table and
// their checksums verified. Forward only.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if err := StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	migrations, err := schema.Load(schema.Postgres)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := createMigrationsTable(ctx, pool); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := applyMigration(ctx, pool, m)
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Version, err)
		}
		if applied {
			log.InfoContext(ctx, "migration applied", "version", m.Version, "checksum", m.Checksum[:8])
		} else {
			log.DebugContext(ctx, "migration already applied", "version", m.Version)
		}
	}

	return nil
}

func createMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			checksum VARCHAR(64) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// applyMigration applies a single migration if it hasn't been applied yet.
func applyMigration(ctx context.Context, pool *pgxpool.Pool, m schema.Migration) (bool, error) {
	var existing string
	err := pool.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", m.Version).Scan(&existing)
	switch {
	case err == nil:
		if existing != m.Checksum {
			return false, &schema.ChecksumMismatch{Version: m.Version, Expected: existing, Got: m.Checksum}
		}
		return false, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return false, fmt.Errorf("read applied checksum: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return false, fmt.Errorf("execute migration: %w", err)
	}

	if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)", m.Version, m.Checksum); err != nil {
		return false, fmt.Errorf("record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	return true, nil
}

// AppliedMigrations lists the rows of schema_migrations in apply order. A
// database that was never migrated has none.
func AppliedMigrations(ctx context.Context, pool *pgxpool.Pool) ([]schema.Applied, error) {
	var exists bool
	if err := pool.QueryRow(ctx, "SELECT to_regclass('schema_migrations') IS NOT NULL").Scan(&exists); err != nil {
		return nil, fmt.Errorf("find migrations table: %w", err)
	}
	if !exists {
		return nil, nil
	}

	rows, err := pool.Query(ctx, "SELECT version, checksum, applied_at FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("query migrations: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (schema.Applied, error) {
		var a schema.Applied
		err := row.Scan(&a.Version, &a.Checksum, &a.AppliedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect migrations: %w", err)
	}
	return out, nil
}
