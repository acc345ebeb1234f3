package api

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo/stores/recipesmemstore"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo/stores/recipespgxstore"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo/stores/recipessqlitestore"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo/stores/todospgxstore"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo/stores/todossqlitestore"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/jrazmi/crudkit/infrastructure/sqlitedb"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// SeedTitles are the todos inserted into an empty store when seeding is on.
var SeedTitles = []string{"Learn Docker", "Build a Docker Image"}

// Backing is an opened store backend and the repositories built on it.
type Backing struct {
	Repositories config.Repositories
	Healthy      func(ctx context.Context) error
	Close        func()
}

// Open builds the repositories for the configured store. Database options
// are read from the environment under prefix.
func Open(ctx context.Context, log *logger.Logger, prefix string, settings config.Settings) (Backing, error) {
	var (
		b   Backing
		err error
	)

	switch settings.Store {
	case config.StoreSQLite:
		var db *sql.DB
		db, err = sqlitedb.NewFromEnv(prefix)
		if err != nil {
			return Backing{}, fmt.Errorf("opening sqlite: %w", err)
		}
		b, err = openSQLite(ctx, log, db, settings.AutoMigrate)

	case config.StorePostgres:
		var pool *postgresdb.Pool
		pool, err = postgresdb.NewFromEnv(prefix, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return Backing{}, fmt.Errorf("opening postgres: %w", err)
		}
		b, err = openPostgres(ctx, log, pool, settings.AutoMigrate)

	default:
		b = openMemory(log)
	}
	if err != nil {
		return Backing{}, err
	}

	if settings.SeedTodos {
		n, err := b.Repositories.Todos.Seed(ctx, SeedTitles...)
		if err != nil {
			b.Close()
			return Backing{}, fmt.Errorf("seeding todos: %w", err)
		}
		log.InfoContext(ctx, "startup", "status", "todos seeded", "count", n)
	}

	log.InfoContext(ctx, "startup", "status", "repositories ready", "store", settings.Store)
	return b, nil
}

func openMemory(log *logger.Logger) Backing {
	return Backing{
		Repositories: config.Repositories{
			Todos:   todosrepo.NewRepository(log, todosmemstore.NewStore()),
			Tasks:   tasksrepo.NewRepository(log, tasksmemstore.NewStore()),
			Recipes: recipesrepo.NewRepository(log, recipesmemstore.NewStore()),
		},
		Close: func() {},
	}
}

// openSQLite takes ownership of db.
func openSQLite(ctx context.Context, log *logger.Logger, db *sql.DB, migrate bool) (Backing, error) {
	if migrate {
		if err := sqlitedb.Migrate(ctx, db, log.Logger); err != nil {
			db.Close()
			return Backing{}, fmt.Errorf("migrating sqlite: %w", err)
		}
	}

	return Backing{
		Repositories: config.Repositories{
			Todos:   todosrepo.NewRepository(log, todossqlitestore.NewStore(log, db)),
			Tasks:   tasksrepo.NewRepository(log, taskssqlitestore.NewStore(log, db)),
			Recipes: recipesrepo.NewRepository(log, recipessqlitestore.NewStore(log, db)),
		},
		Healthy: func(ctx context.Context) error {
			return sqlitedb.StatusCheck(ctx, db)
		},
		Close: func() {
			log.Info("shutdown", "status", "closing sqlite database")
			db.Close()
		},
	}, nil
}

func openPostgres(ctx context.Context, log *logger.Logger, pool *postgresdb.Pool, migrate bool) (Backing, error) {
	if migrate {
		if err := postgresdb.Migrate(ctx, pool, log.Logger); err != nil {
			pool.Close()
			return Backing{}, fmt.Errorf("migrating postgres: %w", err)
		}
	}

	return Backing{
		Repositories: config.Repositories{
			Todos:   todosrepo.NewRepository(log, todospgxstore.NewStore(log, pool)),
			Tasks:   tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pool)),
			Recipes: recipesrepo.NewRepository(log, recipespgxstore.NewStore(log, pool)),
		},
		Healthy: func(ctx context.Context) error {
			return postgresdb.StatusCheck(ctx, pool)
		},
		Close: func() {
			log.Info("shutdown", "status", "closing postgres pool")
			pool.Close()
		},
	}, nil
}
