// Package tasksrepo manages task records.
package tasksrepo

import (
	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Resource is the display name used in messages.
const Resource = "Task"

// Storer defines the data storage interface for Task.
type Storer interface {
	repositories.Storer[Task, CreateTask, UpdateTask, QueryFilter]
}

// Repository provides access to task storage.
type Repository struct {
	repositories.Repository[Task, CreateTask, UpdateTask, QueryFilter]
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		Repository: repositories.NewRepository[Task, CreateTask, UpdateTask, QueryFilter](log, Resource, storer),
	}
}
