// Package bootstrap assembles the excuse service from configuration. Both the
// HTTP server and the CLI build their components here so that backend
// selection is identical across entry points.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/excuse-api/internal/api"
	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/platform/agent"
	"github.com/phrazzld/excuse-api/internal/platform/gemini"
	"github.com/phrazzld/excuse-api/internal/platform/metrics"
	"github.com/phrazzld/excuse-api/internal/platform/prepopulated"
	"github.com/phrazzld/excuse-api/internal/service"
	"github.com/phrazzld/excuse-api/internal/store"
)

// Components are the long-lived, read-only objects shared by all requests.
type Components struct {
	Repository store.ExcuseRepository
	Service    *service.ExcuseService
	Invoker    *api.Invoker
	// Backend is the configured repository backend name.
	Backend string
}

// NewRepository constructs the repository selected by cfg.Repository.Backend.
// The agent backend fails here, not at request time, when the Gemini
// credentials are missing.
func NewRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.ExcuseRepository, error) {
	switch cfg.Repository.Backend {
	case config.BackendAgent:
		backend, err := gemini.NewBackend(ctx, logger.With("component", "gemini_backend"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini backend: %w", err)
		}
		return agent.NewExcuseRepository(backend, logger)

	case config.BackendPrepopulated:
		return prepopulated.NewExcuseRepository(cfg.Repository.Excuses, logger)

	default:
		return nil, fmt.Errorf("unknown repository backend %q", cfg.Repository.Backend)
	}
}

// Build wires repository, service and invoker. m may be nil, in which case
// no metrics are recorded.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*Components, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	repo, err := NewRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var opts []service.Option
	if m != nil {
		opts = append(opts, service.WithObserver(m.ForBackend(cfg.Repository.Backend)))
	}

	svc, err := service.NewExcuseService(repo, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create excuse service: %w", err)
	}

	invoker, err := api.NewInvoker(svc, map[string]string{"backend": cfg.Repository.Backend}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoker: %w", err)
	}

	logger.Info("excuse service initialized", "backend", cfg.Repository.Backend)

	return &Components{
		Repository: repo,
		Service:    svc,
		Invoker:    invoker,
		Backend:    cfg.Repository.Backend,
	}, nil
}
