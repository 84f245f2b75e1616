package source

import "context"

// MockSource is a deterministic ContextSource implementation for testing.
type MockSource struct {
	// Context is the fixed text returned by Extract.
	Context string

	// Error, if set, is returned by Extract instead of Context.
	Error error

	// Calls counts Extract invocations.
	Calls int

	// LastDir stores the most recent directory passed to Extract.
	LastDir string
}

// NewMockSource creates a mock source with the given fixed context.
func NewMockSource(text string) *MockSource {
	return &MockSource{Context: text}
}

// NewMockSourceWithError creates a mock source that always fails.
func NewMockSourceWithError(err error) *MockSource {
	return &MockSource{Error: err}
}

// Extract returns the configured context or error.
func (m *MockSource) Extract(ctx context.Context, dir string) (string, error) {
	m.Calls++
	m.LastDir = dir

	if m.Error != nil {
		return "", m.Error
	}
	return m.Context, nil
}
