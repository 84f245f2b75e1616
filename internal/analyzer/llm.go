package analyzer

import (
	"context"
	"fmt"
)

// LLM defines the interface for interacting with language models.
// Implementations must be stateless and thread-safe.
type LLM interface {
	// Generate produces text from a prompt using the configured model.
	// Returns the generated text or an error if generation fails.
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMConfig holds common configuration options for LLM providers.
type LLMConfig struct {
	// Model specifies the model identifier (e.g., "gpt-4o")
	Model string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float32

	// MaxTokens limits the response length (0 = use provider default)
	MaxTokens int

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultLLMConfig returns sensible defaults for project analysis.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       "gpt-4o",
		Temperature: 0, // model default
		MaxTokens:   2000,
	}
}

// LLMAnalyzer implements ContextAnalyzer with a chat-completion LLM,
// bypassing the external analysis tool entirely. It assembles the analysis
// prompt, invokes the model, and decodes the reply as JSON.
type LLMAnalyzer struct {
	llm    LLM
	config LLMConfig
}

// NewLLMAnalyzer creates an analyzer backed by the given LLM implementation.
func NewLLMAnalyzer(llm LLM, config LLMConfig) *LLMAnalyzer {
	return &LLMAnalyzer{
		llm:    llm,
		config: config,
	}
}

// Analyze prompts the model with the context and decodes its JSON reply.
func (a *LLMAnalyzer) Analyze(ctx context.Context, input string) (*Analysis, error) {
	if a.llm == nil {
		return nil, fmt.Errorf("%w: LLM is required", ErrInvalidConfig)
	}
	if input == "" {
		return nil, fmt.Errorf("%w: context cannot be empty", ErrInvalidConfig)
	}

	text, err := a.llm.Generate(ctx, AssemblePrompt(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLLMFailed, err)
	}

	return decodeAnalysis([]byte(text))
}
