// Package statusbridge serves the welcome, health and metrics routes.
package statusbridge

import (
	"expvar"

	"github.com/jrazmi/crudkit/infrastructure/web"
)

// Config holds configuration for the status bridge
type Config struct {
	Name       string
	Middleware []web.Middleware

	// Healthy optionally checks backing services. A nil func reports healthy.
	Healthy HealthFunc
}

// AddHttpRoutes registers the root and health routes on group, and the
// expvar page on h.
func AddHttpRoutes(h *web.WebHandler, group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.GET("/{$}", b.httpRoot, cfg.Middleware...)
	group.GET("/health", b.httpHealth, cfg.Middleware...)

	h.HandleRaw("GET /debug/vars", expvar.Handler())
}
