package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/crudkit/app/crudkit/api"
	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/environment"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/jrazmi/crudkit/sdk/telemetry"
)

var build = "develop"
var appName = "CRUDKIT"

func main() {
	if err := environment.LoadPath(""); err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}

	log, err := logger.NewFromEnv(appName, logger.WithService("crudkit"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	settings, err := config.Load(appName)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// REPOSITORIES
	backing, err := api.Open(ctx, log, appName, settings)
	if err != nil {
		return fmt.Errorf("stores: %w", err)
	}
	defer backing.Close()

	var handlerOpts web.HandlerOptions
	if err := environment.ParseEnvTags(appName, &handlerOpts); err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	cfg := config.Crudkit{
		Build:        build,
		Logger:       log,
		Telemetry:    telemetry.NewTelemetry(),
		Settings:     settings,
		Repositories: backing.Repositories,
		Healthy:      backing.Healthy,
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(api.WebHandler(cfg, handlerOpts)),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
	defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete")

	return server.Run(ctx)
}
