package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jrazmi/crudkit/sdk/environment"
)

// WebServer is an http.Server that knows its own shutdown budget.
type WebServer struct {
	*http.Server
	Config ServerConfig
}

// ServerConfig is read from the environment.
type ServerConfig struct {
	Port            string        `yaml:"port" env:"PORT" default:":8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" default:"20s"`
}

type ServerOption func(*http.Server)

func WithHandler(handler http.Handler) ServerOption {
	return func(s *http.Server) {
		s.Handler = handler
	}
}

func WithErrorLog(errorLog *log.Logger) ServerOption {
	return func(s *http.Server) {
		s.ErrorLog = errorLog
	}
}

// NewServer builds a server from cfg.
func NewServer(cfg ServerConfig, opts ...ServerOption) *WebServer {
	srv := &http.Server{
		Addr:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	for _, opt := range opts {
		opt(srv)
	}
	return &WebServer{Server: srv, Config: cfg}
}

// NewServerFromEnv creates a new WebServer from environment variables
func NewServerFromEnv(prefix string, opts ...ServerOption) (*WebServer, error) {
	var cfg ServerConfig
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing webserver config: %w", err)
	}
	return NewServer(cfg, opts...), nil
}

// Run serves until ctx is cancelled, then shuts down within ShutdownTimeout.
func (s *WebServer) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			s.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
