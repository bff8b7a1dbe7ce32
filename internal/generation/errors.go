package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when text generation fails for any general reason.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the backend configuration is invalid
	ErrInvalidConfig = errors.New("invalid generation backend configuration")

	// ErrEmptyPrompt is returned when Generate is called with a blank prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// FailureError is the single signal a Backend uses to report a transport or
// model failure. The underlying cause is kept for diagnostics.
type FailureError struct {
	// Backend identifies the backend that failed (e.g., "gemini").
	Backend string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for FailureError.
func (e *FailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Backend, ErrGenerationFailed, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Backend, ErrGenerationFailed)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *FailureError) Unwrap() error {
	return e.Err
}

// Is reports ErrGenerationFailed as a match so callers can use errors.Is
// without caring about the concrete backend.
func (e *FailureError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewFailureError wraps err as a FailureError for the named backend.
func NewFailureError(backend string, err error) *FailureError {
	return &FailureError{Backend: backend, Err: err}
}
