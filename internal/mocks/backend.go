package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/excuse-api/internal/generation"
)

// MockBackend implements generation.Backend for testing
type MockBackend struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// BackendName is returned by Name; defaults to "mock".
	BackendName string

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateCalls struct {
		mu      sync.Mutex
		Count   int
		Prompts []string
	}
}

var _ generation.Backend = (*MockBackend)(nil)

// Generate implements the generation.Backend interface
func (m *MockBackend) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// Name implements the generation.Backend interface
func (m *MockBackend) Name() string {
	if m.BackendName == "" {
		return "mock"
	}
	return m.BackendName
}

// CallCount returns the number of Generate calls so far.
func (m *MockBackend) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt of the most recent Generate call, or "".
func (m *MockBackend) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// NewMockBackendWithText creates a MockBackend that always returns text.
func NewMockBackendWithText(text string) *MockBackend {
	return &MockBackend{Text: text}
}

// NewMockBackendWithError creates a MockBackend that always fails with err.
func NewMockBackendWithError(err error) *MockBackend {
	return &MockBackend{Err: err}
}
