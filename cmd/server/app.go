package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/excuse-api/internal/bootstrap"
	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/platform/metrics"
	"github.com/phrazzld/excuse-api/internal/platform/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	components *bootstrap.Components

	// registry and metrics are nil when metrics are disabled.
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	shutdownTracing tracing.ShutdownFunc
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.shutdownTracing, err = tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if cfg.Tracing.Enabled {
		logger.Info("Tracing initialized", "endpoint", cfg.Tracing.OTLPEndpoint)
	}

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics, err = metrics.New(app.registry)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	app.components, err = bootstrap.Build(ctx, cfg, logger, app.metrics)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server and blocks until ctx is cancelled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.shutdownTracing(ctx); err != nil {
			app.logger.Error("Error shutting down tracer provider", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
