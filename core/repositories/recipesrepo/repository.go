// Package recipesrepo manages recipe records.
package recipesrepo

import (
	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Resource is the display name used in messages.
const Resource = "Recipe"

// Storer defines the data storage interface for Recipe.
type Storer interface {
	repositories.Storer[Recipe, CreateRecipe, UpdateRecipe, QueryFilter]
}

// Repository provides access to recipe storage.
type Repository struct {
	repositories.Repository[Recipe, CreateRecipe, UpdateRecipe, QueryFilter]
}

// NewRepository creates a new Recipe repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		Repository: repositories.NewRepository[Recipe, CreateRecipe, UpdateRecipe, QueryFilter](log, Resource, storer),
	}
}
