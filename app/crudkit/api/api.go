// Package api assembles the crudkit HTTP handler and its store backends.
package api

import (
	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/bridge/repositories/recipesrepobridge"
	"github.com/jrazmi/crudkit/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/crudkit/bridge/repositories/todosrepobridge"
	"github.com/jrazmi/crudkit/bridge/scaffolding/mid"
	"github.com/jrazmi/crudkit/bridge/scaffolding/statusbridge"
	"github.com/jrazmi/crudkit/infrastructure/web"
)

// WebHandler builds the routed handler with global middleware applied.
func WebHandler(cfg config.Crudkit, opts web.HandlerOptions) *web.WebHandler {

	// INITIALIZATION
	h := web.NewWebHandler(opts,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	root := h.Group("")

	// STATUS
	statusbridge.AddHttpRoutes(h, root, statusbridge.Config{
		Name:    "crudkit",
		Healthy: cfg.Healthy,
	})

	// RESOURCES
	todosrepobridge.AddHttpRoutes(root, todosrepobridge.Config{
		Log:            cfg.Logger,
		Repository:     cfg.Repositories.Todos,
		DeleteResponse: cfg.Settings.DeleteResponse,
	})
	tasksrepobridge.AddHttpRoutes(root, tasksrepobridge.Config{
		Log:            cfg.Logger,
		Repository:     cfg.Repositories.Tasks,
		DeleteResponse: cfg.Settings.DeleteResponse,
	})
	recipesrepobridge.AddHttpRoutes(root, recipesrepobridge.Config{
		Log:            cfg.Logger,
		Repository:     cfg.Repositories.Recipes,
		DeleteResponse: cfg.Settings.DeleteResponse,
	})

	return h
}
