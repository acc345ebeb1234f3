// Package config holds the settings and shared dependencies of the crudkit service.
package config

import (
	"context"
	"fmt"

	"github.com/jrazmi/crudkit/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/sdk/environment"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/jrazmi/crudkit/sdk/telemetry"
)

// Store backings.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Settings is the service level configuration read from the environment.
type Settings struct {
	Store          string `yaml:"store" env:"STORE" default:"memory"`
	AutoMigrate    bool   `yaml:"auto_migrate" env:"AUTO_MIGRATE" default:"true"`
	DeleteResponse string `yaml:"delete_response" env:"DELETE_RESPONSE" default:"empty"`
	SeedTodos      bool   `yaml:"seed_todos" env:"SEED_TODOS" default:"false"`
}

// Load reads Settings under prefix and rejects unknown values.
func Load(prefix string) (Settings, error) {
	var s Settings
	if err := environment.ParseEnvTags(prefix, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	switch s.Store {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("unknown store %q: want %s, %s or %s", s.Store, StoreMemory, StoreSQLite, StorePostgres)
	}

	switch s.DeleteResponse {
	case fopbridge.DeleteEmpty, fopbridge.DeleteMessage:
	default:
		return fmt.Errorf("unknown delete response %q: want %s or %s", s.DeleteResponse, fopbridge.DeleteEmpty, fopbridge.DeleteMessage)
	}
	return nil
}

// Repositories are the resource repositories the service exposes.
type Repositories struct {
	Todos   *todosrepo.Repository
	Tasks   *tasksrepo.Repository
	Recipes *recipesrepo.Repository
}

// Crudkit is the overall configuration for the crudkit application.
type Crudkit struct {
	Build        string
	Logger       *logger.Logger
	Telemetry    telemetry.Telemetry
	Settings     Settings
	Repositories Repositories

	// Healthy checks the active backing. Nil for the memory store.
	Healthy func(ctx context.Context) error
}
