package generation

import "context"

// Backend defines the interface for a single call to an external text
// generation capability.
type Backend interface {
	// Generate sends prompt to the backend and returns the generated text.
	//
	// The returned text is never nil but may be empty: a model answering with
	// an empty string is not an error. Any transport or model failure is
	// returned as a *FailureError. Implementations never retry.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns a short identifier for the backend, used in logs and metrics.
	Name() string
}

// BackendFunc adapts an ordinary function to the Backend interface.
type BackendFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f BackendFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Name implements Backend.
func (f BackendFunc) Name() string {
	return "func"
}
