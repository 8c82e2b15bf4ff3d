package llm

import (
	"context"
	"sync"
)

// MockClient is a test double for the LLM Client interface.
// It can also be used for dry-run mode.
type MockClient struct {
	Response *Response
	Err      error

	mu      sync.Mutex
	Calls   []string // records prompts sent
	Schemas []string // schema names passed to CompleteJSON
}

// Complete records the call and returns the mock response.
func (m *MockClient) Complete(ctx context.Context, prompt string) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, prompt)
	return m.Response, m.Err
}

// CompleteJSON records the call and schema name and returns the mock response.
func (m *MockClient) CompleteJSON(ctx context.Context, prompt string, schema Schema) (*Response, error) {
	m.mu.Lock()
	m.Schemas = append(m.Schemas, schema.Name)
	m.mu.Unlock()
	return m.Complete(ctx, prompt)
}

// CallCount returns how many prompts were sent.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
