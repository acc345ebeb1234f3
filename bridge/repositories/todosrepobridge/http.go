// Package todosrepobridge contains HTTP route registration for Todo.
package todosrepobridge

import (
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Config holds configuration for the Todo bridge
type Config struct {
	Log            *logger.Logger
	Repository     *todosrepo.Repository
	DeleteResponse string
	Middleware     []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Todo
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.GET("/todos", b.httpList, cfg.Middleware...)
	group.GET("/todos/{id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/todos", b.httpCreate, cfg.Middleware...)
	group.PUT("/todos/{id}", b.httpUpdate, cfg.Middleware...)
	group.PATCH("/todos/{id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/todos/{id}", b.httpDelete, cfg.Middleware...)
	group.PATCH("/todos/{id}/complete", b.httpComplete, cfg.Middleware...)
}
