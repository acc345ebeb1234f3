// Package commands implements the database maintenance operations of the
// tooling binary.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/jrazmi/crudkit/infrastructure/sqlitedb"
	"github.com/jrazmi/crudkit/schema"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// ErrMemoryStore is returned for operations that need a database.
var ErrMemoryStore = errors.New("the memory store keeps nothing between runs, set STORE to sqlite or postgres")

// Migrate applies the pending embedded migrations to the configured database.
func Migrate(ctx context.Context, log *logger.Logger, prefix string, settings config.Settings) error {
	log.InfoContext(ctx, "migration started", "store", settings.Store)

	switch settings.Store {
	case config.StoreSQLite:
		db, err := sqlitedb.NewFromEnv(prefix)
		if err != nil {
			return fmt.Errorf("opening sqlite: %w", err)
		}
		defer db.Close()

		if err := sqlitedb.Migrate(ctx, db, log.Logger); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

	case config.StorePostgres:
		pool, err := postgresdb.NewFromEnv(prefix, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return fmt.Errorf("opening postgres: %w", err)
		}
		defer pool.Close()

		if err := postgresdb.Migrate(ctx, pool, log.Logger); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

	default:
		return ErrMemoryStore
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}

// Status compares the embedded migrations with those recorded in the
// configured database.
func Status(ctx context.Context, log *logger.Logger, prefix string, settings config.Settings) ([]schema.Status, error) {
	var (
		dir     string
		applied []schema.Applied
	)

	switch settings.Store {
	case config.StoreSQLite:
		db, err := sqlitedb.NewFromEnv(prefix)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		defer db.Close()

		dir = schema.SQLite
		if applied, err = sqlitedb.AppliedMigrations(ctx, db); err != nil {
			return nil, err
		}

	case config.StorePostgres:
		pool, err := postgresdb.NewFromEnv(prefix, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		defer pool.Close()

		dir = schema.Postgres
		if applied, err = postgresdb.AppliedMigrations(ctx, pool); err != nil {
			return nil, err
		}

	default:
		return nil, ErrMemoryStore
	}

	embedded, err := schema.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	return schema.Compare(embedded, applied), nil
}
