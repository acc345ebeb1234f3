package commands

import (
	"context"
	"fmt"

	"github.com/jrazmi/crudkit/app/crudkit/api"
	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Seed inserts the starter todos into an empty store. It returns the number
// of todos created, zero when the store already had some.
func Seed(ctx context.Context, log *logger.Logger, prefix string, settings config.Settings) (int, error) {
	if settings.Store == config.StoreMemory {
		return 0, ErrMemoryStore
	}

	// Seeding happens below so the count can be reported.
	settings.SeedTodos = false

	backing, err := api.Open(ctx, log, prefix, settings)
	if err != nil {
		return 0, err
	}
	defer backing.Close()

	n, err := backing.Repositories.Todos.Seed(ctx, api.SeedTitles...)
	if err != nil {
		return 0, fmt.Errorf("seed todos: %w", err)
	}
	return n, nil
}
