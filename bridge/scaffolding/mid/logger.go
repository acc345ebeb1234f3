package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/jrazmi/crudkit/sdk/telemetry"
)

// Logger writes a line when a request starts and another when it completes.
func Logger(log *logger.Logger) web.Middleware {
	tel := telemetry.NewTelemetry()
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}

			log := log.With("trace_id", tel.GetTraceID(ctx))
			log.InfoContext(ctx, "request started", "method", r.Method, "path", path, "remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			log.InfoContext(ctx, "request completed", "method", r.Method, "path", path,
				"status", web.StatusCode(resp), "since", time.Since(now).String())

			return resp
		}
	}
}
