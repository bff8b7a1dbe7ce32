// Package mocks provides centralized mock implementations for testing.
//
// Each mock uses function fields for custom behavior, default return values
// for the common case, and mutex-protected call tracking so tests can verify
// how many times, and with which arguments, a dependency was called.
//
// Usage:
//
//	backend := &mocks.MockBackend{
//	    GenerateFn: func(ctx context.Context, prompt string) (string, error) {
//	        return "", errors.New("network down")
//	    },
//	}
package mocks
