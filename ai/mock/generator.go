package mock

import "context"

// MockGenerator is a test double for ai.TextGenerator.
// It allows custom behavior injection via a function field.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, Generate returns an empty JSON array.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate returns the injected response, or "[]" by default.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.callCount++

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	return "[]", nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateFunc = nil
}
