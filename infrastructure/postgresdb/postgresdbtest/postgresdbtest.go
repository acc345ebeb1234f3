// Package postgresdbtest starts a disposable Postgres for integration tests.
package postgresdbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:16-alpine"

// NewPool starts a Postgres container, applies the embedded migrations and
// returns a pool to it. The test is skipped under -short or without Docker.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, image,
		postgres.WithDatabase("crudkit"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("starting postgres container: %s", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %s", err)
	}

	pool, err := postgresdb.NewTestDB(dsn)
	if err != nil {
		t.Fatalf("opening pool: %s", err)
	}
	t.Cleanup(pool.Close)

	if err := postgresdb.Migrate(ctx, pool, logger.NewDiscard().Logger); err != nil {
		t.Fatalf("migrating: %s", err)
	}

	return pool
}
