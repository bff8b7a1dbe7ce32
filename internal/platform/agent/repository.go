package agent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/excuse-api/internal/generation"
	"github.com/phrazzld/excuse-api/internal/store"
)

// RepositoryName identifies this variant in errors, logs and metrics.
const RepositoryName = "agent"

// ExcuseRepository implements store.ExcuseRepository by asking a
// generation.Backend for an excuse.
type ExcuseRepository struct {
	backend generation.Backend
	logger  *slog.Logger
}

var _ store.ExcuseRepository = (*ExcuseRepository)(nil)

// NewExcuseRepository creates an agent-backed repository around backend.
func NewExcuseRepository(backend generation.Backend, logger *slog.Logger) (*ExcuseRepository, error) {
	if backend == nil {
		return nil, errors.New("generation backend cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &ExcuseRepository{
		backend: backend,
		logger:  logger.With("repository", RepositoryName, "backend", backend.Name()),
	}, nil
}

// Fetch implements store.ExcuseRepository.
//
// The request is validated again here even if the caller already did so.
// The backend's text is returned unchanged, including an empty string.
func (r *ExcuseRepository) Fetch(ctx context.Context, request string) (string, error) {
	trimmed, err := store.ValidateRequest(request)
	if err != nil {
		return "", err
	}

	prompt, err := buildPrompt(trimmed)
	if err != nil {
		return "", store.NewGenerationError(RepositoryName, "failed to build prompt", err)
	}

	excuse, err := r.backend.Generate(ctx, prompt)
	if err != nil {
		r.logger.WarnContext(ctx, "backend failed to generate excuse", "error", err)
		return "", store.NewGenerationError(RepositoryName, "failed to generate excuse", err)
	}

	if excuse == "" {
		r.logger.DebugContext(ctx, "backend returned an empty excuse")
	}

	return excuse, nil
}

// Execute implements store.ExcuseRepository.
func (r *ExcuseRepository) Execute(ctx context.Context, op store.Operation) (string, error) {
	return op.Execute(ctx, r)
}
