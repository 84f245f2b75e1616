package analyzer

import (
	"context"
	"errors"
	"testing"
)

func TestCommandAnalyzer_Analyze_Success(t *testing.T) {
	// cat echoes stdin, so feeding JSON context gets the same JSON back.
	a := &CommandAnalyzer{Bin: "sh", Args: []string{"-c", "cat"}}

	ctx := context.Background()
	input := `{"project_summary": "A CLI tool", "recommendations": ["Add tests", "Add docs"]}`
	result, err := a.Analyze(ctx, input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProjectSummary != "A CLI tool" {
		t.Errorf("unexpected summary: %q", result.ProjectSummary)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0] != "Add tests" || result.Recommendations[1] != "Add docs" {
		t.Errorf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestCommandAnalyzer_Analyze_EmptyObject(t *testing.T) {
	a := &CommandAnalyzer{Bin: "sh", Args: []string{"-c", "cat"}}

	ctx := context.Background()
	result, err := a.Analyze(ctx, `{}`)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProjectSummary != "" {
		t.Errorf("expected empty summary, got %q", result.ProjectSummary)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", result.Recommendations)
	}
}

func TestCommandAnalyzer_Analyze_InvalidJSON(t *testing.T) {
	a := &CommandAnalyzer{Bin: "sh", Args: []string{"-c", "echo this is not json"}}

	ctx := context.Background()
	_, err := a.Analyze(ctx, "some context")

	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestCommandAnalyzer_Analyze_ToolNotFound(t *testing.T) {
	a := &CommandAnalyzer{Bin: "definitely-not-a-real-analysis-tool"}

	ctx := context.Background()
	_, err := a.Analyze(ctx, "some context")

	if err == nil {
		t.Fatal("expected error for missing tool")
	}
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestCommandAnalyzer_Analyze_NonZeroExit(t *testing.T) {
	a := &CommandAnalyzer{Bin: "false"}

	ctx := context.Background()
	_, err := a.Analyze(ctx, "some context")

	if err == nil {
		t.Fatal("expected error for failing tool")
	}
	if !errors.Is(err, ErrToolFailed) {
		t.Errorf("expected ErrToolFailed, got %v", err)
	}
}
