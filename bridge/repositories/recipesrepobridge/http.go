// Package recipesrepobridge contains HTTP route registration for Recipe.
package recipesrepobridge

import (
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Config holds configuration for the Recipe bridge
type Config struct {
	Log            *logger.Logger
	Repository     *recipesrepo.Repository
	DeleteResponse string
	Middleware     []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Recipe
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.GET("/recipes", b.httpList, cfg.Middleware...)
	group.GET("/recipes/{id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/recipes", b.httpCreate, cfg.Middleware...)
	group.PUT("/recipes/{id}", b.httpUpdate, cfg.Middleware...)
	group.PATCH("/recipes/{id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/recipes/{id}", b.httpDelete, cfg.Middleware...)
}
