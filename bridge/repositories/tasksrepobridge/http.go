// Package tasksrepobridge contains HTTP route registration for Task.
package tasksrepobridge

import (
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log            *logger.Logger
	Repository     *tasksrepo.Repository
	DeleteResponse string
	Middleware     []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.GET("/tasks/{id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PUT("/tasks/{id}", b.httpUpdate, cfg.Middleware...)
	group.PATCH("/tasks/{id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{id}", b.httpDelete, cfg.Middleware...)
}
