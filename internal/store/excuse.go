package store

import (
	"context"
	"strings"
)

// ExcuseRepository defines the interface for producing excuses.
// Implementations must be safe for concurrent use; all shared state is
// immutable after construction.
type ExcuseRepository interface {
	// Fetch returns an excuse for the given request.
	// Returns ErrInvalidRequest if request is blank.
	// Returns a *GenerationError (matching ErrGeneration) if no excuse could be produced.
	Fetch(ctx context.Context, request string) (string, error)

	// Execute runs op against this repository and returns its result.
	Execute(ctx context.Context, op Operation) (string, error)
}

// ValidateRequest trims request and rejects it if nothing is left.
// It has no state, so the same input always yields the same outcome.
func ValidateRequest(request string) (string, error) {
	trimmed := strings.TrimSpace(request)
	if trimmed == "" {
		return "", ErrInvalidRequest
	}
	return trimmed, nil
}
