package analyzer

import "context"

// MockLLM is a deterministic LLM implementation for testing.
type MockLLM struct {
	// Response is the fixed text returned by Generate.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// LastPrompt stores the most recent prompt passed to Generate.
	LastPrompt string
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Generate returns the configured response or error.
func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt

	if m.Error != nil {
		return "", m.Error
	}
	return m.Response, nil
}

// MockAnalyzer is a deterministic ContextAnalyzer implementation for testing.
type MockAnalyzer struct {
	// Analysis is the fixed result returned by Analyze.
	Analysis *Analysis

	// Error, if set, is returned by Analyze instead of a result.
	Error error

	// Calls counts Analyze invocations.
	Calls int

	// LastInput stores the most recent context passed to Analyze.
	LastInput string
}

// NewMockAnalyzer creates a mock analyzer with the given fixed result.
func NewMockAnalyzer(a *Analysis) *MockAnalyzer {
	return &MockAnalyzer{Analysis: a}
}

// NewMockAnalyzerWithError creates a mock analyzer that always fails.
func NewMockAnalyzerWithError(err error) *MockAnalyzer {
	return &MockAnalyzer{Error: err}
}

// Analyze returns the configured result or error.
func (m *MockAnalyzer) Analyze(ctx context.Context, input string) (*Analysis, error) {
	m.Calls++
	m.LastInput = input

	if m.Error != nil {
		return nil, m.Error
	}
	if m.Analysis == nil {
		return &Analysis{}, nil
	}
	return m.Analysis, nil
}
