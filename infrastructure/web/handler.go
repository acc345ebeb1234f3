package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TraceHeader carries the request trace id in and out of the service.
const TraceHeader = "X-Trace-Id"

// WebHandler routes requests through the global middleware to HandlerFuncs
// and writes whatever Encoder they return.
type WebHandler struct {
	mux        *http.ServeMux
	log        *slog.Logger
	telemetry  Telemetry
	cors       CORSConfig
	middleware []Middleware
}

// HandlerOptions is the part of the handler read from the environment.
type HandlerOptions struct {
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins" env:"CORS_ORIGINS" default:"*" separator:","`
}

type HandlerOption func(*WebHandler)

// WithLogging sets the logger used for response write failures.
func WithLogging(log *slog.Logger) HandlerOption {
	return func(h *WebHandler) {
		h.log = log
	}
}

// WithTelemetry stamps every request with a trace id.
func WithTelemetry(tel Telemetry) HandlerOption {
	return func(h *WebHandler) {
		h.telemetry = tel
	}
}

// WithGlobalMiddleware appends middleware run for every route.
func WithGlobalMiddleware(middleware ...Middleware) HandlerOption {
	return func(h *WebHandler) {
		h.middleware = append(h.middleware, middleware...)
	}
}

// NewWebHandler creates a WebHandler. CORS is enabled when cfg lists any
// origin, and then answers preflight requests for every path.
func NewWebHandler(cfg HandlerOptions, opts ...HandlerOption) *WebHandler {
	h := &WebHandler{
		mux:  http.NewServeMux(),
		cors: DefaultCORSConfig(),
	}
	h.cors.Origins = cfg.CORSOrigins

	for _, opt := range opts {
		opt(h)
	}

	if len(h.cors.Origins) > 0 {
		h.middleware = append([]Middleware{h.corsMiddleware()}, h.middleware...)
		h.Handle(http.MethodOptions, "/", func(ctx context.Context, r *http.Request) Encoder {
			return NewNoContent()
		})
	}

	return h
}

// Handle registers handler for method and path. path uses ServeMux patterns.
func (h *WebHandler) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	chain := h.buildHandlerChain(handler, middleware...)

	h.mux.HandleFunc(strings.ToUpper(method)+" "+path, func(w http.ResponseWriter, r *http.Request) {
		ctx := h.traceContext(r.Context(), w, r)
		ctx = setWriter(ctx, w)

		if err := Respond(ctx, w, chain(ctx, r)); err != nil && h.log != nil {
			h.log.ErrorContext(ctx, "respond error", "error", err)
		}
	})
}

func (h *WebHandler) traceContext(ctx context.Context, w http.ResponseWriter, r *http.Request) context.Context {
	if h.telemetry == nil {
		return ctx
	}

	if inbound := r.Header.Get(TraceHeader); inbound != "" {
		if ta, ok := h.telemetry.(traceAdopter); ok {
			ctx = ta.WithTraceID(ctx, inbound)
		} else {
			ctx = h.telemetry.SetTraceID(ctx)
		}
	} else {
		ctx = h.telemetry.SetTraceID(ctx)
	}

	w.Header().Set(TraceHeader, h.telemetry.GetTraceID(ctx))
	return ctx
}

// HandleRaw registers a plain http.Handler. Global middleware is not applied.
func (h *WebHandler) HandleRaw(pattern string, handler http.Handler) {
	h.mux.Handle(pattern, handler)
}

func (h *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}
