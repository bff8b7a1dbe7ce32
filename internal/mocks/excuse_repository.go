package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/excuse-api/internal/store"
)

// MockExcuseRepository implements store.ExcuseRepository for testing
type MockExcuseRepository struct {
	FetchFn func(ctx context.Context, request string) (string, error)

	// Default response values
	Excuse string
	Err    error

	FetchCalls struct {
		mu       sync.Mutex
		Count    int
		Requests []string
	}
}

var _ store.ExcuseRepository = (*MockExcuseRepository)(nil)

// Fetch implements the store.ExcuseRepository interface
func (m *MockExcuseRepository) Fetch(ctx context.Context, request string) (string, error) {
	m.FetchCalls.mu.Lock()
	m.FetchCalls.Count++
	m.FetchCalls.Requests = append(m.FetchCalls.Requests, request)
	m.FetchCalls.mu.Unlock()

	if m.FetchFn != nil {
		return m.FetchFn(ctx, request)
	}

	return m.Excuse, m.Err
}

// Execute implements the store.ExcuseRepository interface
func (m *MockExcuseRepository) Execute(ctx context.Context, op store.Operation) (string, error) {
	return op.Execute(ctx, m)
}

// FetchCount returns the number of Fetch calls so far.
func (m *MockExcuseRepository) FetchCount() int {
	m.FetchCalls.mu.Lock()
	defer m.FetchCalls.mu.Unlock()
	return m.FetchCalls.Count
}

// LastRequest returns the request of the most recent Fetch call, or "".
func (m *MockExcuseRepository) LastRequest() string {
	m.FetchCalls.mu.Lock()
	defer m.FetchCalls.mu.Unlock()
	if len(m.FetchCalls.Requests) == 0 {
		return ""
	}
	return m.FetchCalls.Requests[len(m.FetchCalls.Requests)-1]
}
