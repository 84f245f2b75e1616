// Package analyzer turns extracted project context into a structured
// analysis. It defines a provider-agnostic ContextAnalyzer interface with a
// production implementation that shells out to an external analysis tool, an
// in-process implementation backed by a chat-completion LLM, and
// deterministic mocks for testing.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrToolNotFound  = errors.New("analysis tool not found")
	ErrToolFailed    = errors.New("analysis tool failed")
	ErrInvalidJSON   = errors.New("analysis output is not valid JSON")
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid analyzer configuration")
)

// Analysis holds the structured result of a project analysis. Both fields
// are optional: an analyzer may return either, both, or neither.
type Analysis struct {
	// ProjectSummary describes what the analyzed code does.
	ProjectSummary string `json:"project_summary"`

	// Recommendations lists suggested improvements, in order.
	Recommendations []string `json:"recommendations"`
}

// ContextAnalyzer produces an Analysis from extracted project context.
// Implementations must be stateless and safe for reuse across runs.
type ContextAnalyzer interface {
	// Analyze inspects the context text and returns the structured result.
	Analyze(ctx context.Context, input string) (*Analysis, error)
}

// decodeAnalysis parses an analyzer reply into an Analysis. Markdown code
// fences around the JSON object are tolerated since LLM backends commonly
// wrap their replies in them.
func decodeAnalysis(data []byte) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal(stripFence(data), &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return &a, nil
}

// stripFence removes a surrounding ```json ... ``` (or bare ```) fence.
func stripFence(data []byte) []byte {
	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, "```") {
		return data
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the language tag on the opening fence line.
		text = text[idx+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return []byte(strings.TrimSpace(text))
}
