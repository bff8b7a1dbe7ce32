package service

import (
	"errors"
	"fmt"
)

// Service-tier sentinel errors. The API layer maps these to HTTP status codes.
var (
	// ErrInvalidRequest indicates the request text was rejected.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrGenerationFailed indicates no excuse could be produced.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrGenerationFailed = errors.New("excuse generation failed")

	// ErrOperationConsumed is returned when an operation is run a second time.
	ErrOperationConsumed = errors.New("operation already executed")
)

// InvalidRequestError reports a rejected request at the service tier.
type InvalidRequestError struct {
	// Operation is the operation that rejected the request (e.g., "generate_excuse")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface for InvalidRequestError.
func (e *InvalidRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("excuse service %s: %s: %s: %v", e.Operation, ErrInvalidRequest, e.Message, e.Err)
	}
	return fmt.Sprintf("excuse service %s: %s: %s", e.Operation, ErrInvalidRequest, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *InvalidRequestError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidRequest) true.
func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// GenerationFailureError reports that the service could not produce an excuse,
// whatever the underlying reason.
type GenerationFailureError struct {
	// Operation is the operation that failed (e.g., "generate_excuse", "generate_vague")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GenerationFailureError.
func (e *GenerationFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("excuse service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("excuse service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationFailureError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrGenerationFailed) true.
func (e *GenerationFailureError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewInvalidRequestError creates a new InvalidRequestError.
func NewInvalidRequestError(operation, message string, err error) *InvalidRequestError {
	return &InvalidRequestError{Operation: operation, Message: message, Err: err}
}

// NewGenerationFailureError creates a new GenerationFailureError.
func NewGenerationFailureError(operation, message string, err error) *GenerationFailureError {
	return &GenerationFailureError{Operation: operation, Message: message, Err: err}
}
