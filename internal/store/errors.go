package store

import (
	"errors"
	"fmt"
)

// Repository-tier errors.
var (
	// ErrInvalidRequest is returned when the request text is empty or only whitespace.
	ErrInvalidRequest = errors.New("request text cannot be empty")

	// ErrGeneration is the sentinel matched by every *GenerationError.
	ErrGeneration = errors.New("excuse generation failed")

	// ErrNoExcuses is returned by the prepopulated variant when its list is empty.
	ErrNoExcuses = errors.New("no excuses available")

	// ErrOperationConsumed is returned when an operation is executed a second time.
	ErrOperationConsumed = errors.New("operation already executed")
)

// GenerationError reports that a repository could not produce an excuse,
// either because its backend failed or because it had nothing to choose from.
// The backend's own error is kept in Err for diagnostics; it is never the
// outermost error returned by a repository.
type GenerationError struct {
	// Repository names the variant that failed (e.g., "agent", "prepopulated").
	Repository string
	// Message is a human-readable description of the failure.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface for GenerationError.
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s repository: %s: %v", e.Repository, e.Message, e.Err)
	}
	return fmt.Sprintf("%s repository: %s", e.Repository, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrGeneration) true for every GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// NewGenerationError creates a GenerationError for the named repository.
func NewGenerationError(repository, message string, err error) *GenerationError {
	return &GenerationError{
		Repository: repository,
		Message:    message,
		Err:        err,
	}
}

// IsInvalidRequest reports whether err is a repository-tier validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsGenerationError reports whether err is a repository-tier generation failure.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
