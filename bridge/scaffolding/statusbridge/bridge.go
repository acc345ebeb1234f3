package statusbridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/jrazmi/crudkit/infrastructure/web"
)

// HealthFunc reports whether a dependency is reachable.
type HealthFunc func(ctx context.Context) error

type bridge struct {
	name    string
	healthy HealthFunc
}

func newBridge(cfg Config) *bridge {
	name := cfg.Name
	if name == "" {
		name = "crudkit"
	}
	return &bridge{name: name, healthy: cfg.Healthy}
}

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (b *bridge) httpRoot(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewJSONResponse(Message{Message: "Welcome to " + b.name})
}

func (b *bridge) httpHealth(ctx context.Context, r *http.Request) web.Encoder {
	if b.healthy != nil {
		if err := b.healthy(ctx); err != nil {
			return errs.Newf(errs.Internal, "unhealthy: %s", err)
		}
	}
	return web.NewJSONResponse(Health{Status: "healthy", Message: "Service is running"})
}
