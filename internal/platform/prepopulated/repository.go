package prepopulated

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/store"
)

// RepositoryName identifies this variant in errors, logs and metrics.
const RepositoryName = "prepopulated"

// ExcuseRepository implements store.ExcuseRepository over a static list.
type ExcuseRepository struct {
	excuses []string
	intN    func(n int) int
	logger  *slog.Logger
}

var _ store.ExcuseRepository = (*ExcuseRepository)(nil)

// Option configures an ExcuseRepository.
type Option func(*ExcuseRepository)

// WithIntN replaces the random index source. intN must return a value in [0, n).
func WithIntN(intN func(n int) int) Option {
	return func(r *ExcuseRepository) {
		r.intN = intN
	}
}

// NewExcuseRepository creates a repository over excuses.
//
// A nil slice means "not configured" and selects config.DefaultExcuses. A
// non-nil empty slice is kept as is, and every Fetch will then fail. The slice
// is copied, so later changes by the caller have no effect.
func NewExcuseRepository(excuses []string, logger *slog.Logger, opts ...Option) (*ExcuseRepository, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if excuses == nil {
		excuses = config.DefaultExcuses
	}

	r := &ExcuseRepository{
		excuses: append(make([]string, 0, len(excuses)), excuses...),
		intN:    rand.IntN,
		logger:  logger.With("repository", RepositoryName),
	}
	for _, opt := range opts {
		opt(r)
	}

	if len(r.excuses) == 0 {
		r.logger.Warn("prepopulated repository has no excuses configured")
	}

	return r, nil
}

// Len returns the number of configured excuses.
func (r *ExcuseRepository) Len() int {
	return len(r.excuses)
}

// Fetch implements store.ExcuseRepository. Each call picks independently.
func (r *ExcuseRepository) Fetch(ctx context.Context, request string) (string, error) {
	if _, err := store.ValidateRequest(request); err != nil {
		return "", err
	}

	if len(r.excuses) == 0 {
		return "", store.NewGenerationError(RepositoryName, "no excuses available", store.ErrNoExcuses)
	}

	idx := r.intN(len(r.excuses))
	if idx < 0 || idx >= len(r.excuses) {
		return "", store.NewGenerationError(RepositoryName, "failed to select excuse",
			errors.New("random index out of range"))
	}

	r.logger.DebugContext(ctx, "selected prepopulated excuse", "index", idx)
	return r.excuses[idx], nil
}

// Execute implements store.ExcuseRepository.
func (r *ExcuseRepository) Execute(ctx context.Context, op store.Operation) (string, error) {
	return op.Execute(ctx, r)
}
