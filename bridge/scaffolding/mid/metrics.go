package mid

import (
	"context"
	"net/http"

	"github.com/jrazmi/crudkit/bridge/scaffolding/metrics"
	"github.com/jrazmi/crudkit/infrastructure/web"
)

// goroutineSample is how many requests pass between goroutine gauge refreshes.
const goroutineSample = 1000

// Metrics counts requests, failed responses and responses per status class.
// It runs inside Errors, so the status it sees is the one the client gets.
func Metrics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = metrics.Set(ctx)

			resp := next(ctx, r)

			if n := metrics.AddRequests(ctx); n%goroutineSample == 0 {
				metrics.AddGoroutines(ctx)
			}

			status := web.StatusCode(resp)
			metrics.AddStatus(ctx, status)
			if isError(resp) != nil || status >= http.StatusInternalServerError {
				metrics.AddErrors(ctx)
			}

			return resp
		}
	}
}
