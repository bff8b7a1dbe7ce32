// Package main implements the entry point for the excuse API server, which
// turns requests for someone's time into jargon-heavy excuses.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration, sets up logging and builds the
// application.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"backend", cfg.Repository.Backend,
		"tracing_enabled", cfg.Tracing.Enabled,
		"metrics_enabled", cfg.Metrics.Enabled)
	if cfg.LLM.GeminiAPIKey != "" {
		slog.Debug("LLM configuration", "api_key_present", true, "model", cfg.LLM.ModelName)
	}

	return newApplication(ctx, cfg, l)
}
