package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/excuse-api/internal/config"
)

// Option configures Setup.
type Option func(*setupOptions)

type setupOptions struct {
	out io.Writer
}

// WithWriter directs log output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(o *setupOptions) {
		o.out = w
	}
}

// ParseLevel maps a configured level name (case-insensitive) to a slog.Level.
// ok is false for unknown names, in which case Info is returned.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes the application's logger from the server configuration.
// It creates a JSON logger at the configured level, wrapped in a
// ContextHandler, and sets it as the slog default.
func Setup(cfg config.ServerConfig, opts ...Option) (*slog.Logger, error) {
	o := setupOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	level, ok := ParseLevel(cfg.LogLevel)

	handler := NewContextHandler(slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: level}))
	logger := slog.New(handler).With("service", "excuse-api")

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	slog.SetDefault(logger)
	return logger, nil
}
