package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLLMAnalyzer_Analyze_Success(t *testing.T) {
	mockLLM := NewMockLLM(`{"project_summary": "A report generator", "recommendations": ["Refactor"]}`)
	a := NewLLMAnalyzer(mockLLM, DefaultLLMConfig())

	ctx := context.Background()
	result, err := a.Analyze(ctx, "package main ...")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProjectSummary != "A report generator" {
		t.Errorf("unexpected summary: %q", result.ProjectSummary)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0] != "Refactor" {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}

	// The prompt must carry both the instruction block and the context.
	if !strings.Contains(mockLLM.LastPrompt, "project_summary") {
		t.Error("prompt does not mention the expected JSON keys")
	}
	if !strings.Contains(mockLLM.LastPrompt, "package main ...") {
		t.Error("prompt does not contain the extracted context")
	}
}

func TestLLMAnalyzer_Analyze_FencedReply(t *testing.T) {
	mockLLM := NewMockLLM("```json\n{\"project_summary\": \"Fenced\"}\n```")
	a := NewLLMAnalyzer(mockLLM, DefaultLLMConfig())

	ctx := context.Background()
	result, err := a.Analyze(ctx, "context")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProjectSummary != "Fenced" {
		t.Errorf("unexpected summary: %q", result.ProjectSummary)
	}
}

func TestLLMAnalyzer_Analyze_LLMError(t *testing.T) {
	llmErr := errors.New("API rate limit exceeded")
	a := NewLLMAnalyzer(NewMockLLMWithError(llmErr), DefaultLLMConfig())

	ctx := context.Background()
	_, err := a.Analyze(ctx, "context")

	if err == nil {
		t.Fatal("expected error from LLM")
	}
	if !errors.Is(err, ErrLLMFailed) {
		t.Errorf("expected ErrLLMFailed, got %v", err)
	}
}

func TestLLMAnalyzer_Analyze_EmptyInput(t *testing.T) {
	a := NewLLMAnalyzer(NewMockLLM("{}"), DefaultLLMConfig())

	ctx := context.Background()
	_, err := a.Analyze(ctx, "")

	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLLMAnalyzer_Analyze_NilLLM(t *testing.T) {
	a := NewLLMAnalyzer(nil, DefaultLLMConfig())

	ctx := context.Background()
	_, err := a.Analyze(ctx, "context")

	if err == nil {
		t.Fatal("expected error for nil LLM")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
