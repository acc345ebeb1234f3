package web

import (
	"context"
	"net/http"
	"strings"
)

// CORSConfig holds CORS configuration options
type CORSConfig struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
	MaxAge      string
}

// DefaultCORSConfig returns a default CORS configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins:     []string{"*"},
		Methods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		Headers:     []string{"Accept", "Content-Type", "Content-Length", "Authorization", TraceHeader},
		Credentials: true,
		MaxAge:      "86400",
	}
}

func (wh *WebHandler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	allMiddleware := make([]Middleware, 0, len(wh.middleware)+len(middleware))
	allMiddleware = append(allMiddleware, wh.middleware...)
	allMiddleware = append(allMiddleware, middleware...)

	final := handler
	for i := len(allMiddleware) - 1; i >= 0; i-- {
		final = allMiddleware[i](final)
	}

	return final
}

func (wh *WebHandler) corsMiddleware() Middleware {
	cfg := wh.cors
	methods := strings.Join(cfg.Methods, ", ")
	headers := strings.Join(cfg.Headers, ", ")

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, r *http.Request) Encoder {
			w := GetWriter(ctx)
			if w == nil {
				return NewError(http.StatusInternalServerError, "response writer not available")
			}

			origin := r.Header.Get("Origin")
			for _, allowed := range cfg.Origins {
				if allowed == "*" || allowed == origin {
					w.Header().Set("Access-Control-Allow-Origin", allowed)
					break
				}
			}

			// Credentials are never allowed alongside a wildcard origin.
			if cfg.Credentials && w.Header().Get("Access-Control-Allow-Origin") != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if methods != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			if cfg.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", cfg.MaxAge)
			}
			w.Header().Set("Access-Control-Expose-Headers", "X-Total-Count, "+TraceHeader)

			if r.Method == http.MethodOptions {
				return NewNoContent()
			}

			return next(ctx, r)
		}
	}
}
