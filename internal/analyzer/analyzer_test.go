package analyzer

import (
	"errors"
	"testing"
)

func TestDecodeAnalysis_FullObject(t *testing.T) {
	data := []byte(`{"project_summary": "S", "recommendations": ["A", "B"]}`)

	a, err := decodeAnalysis(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ProjectSummary != "S" {
		t.Errorf("unexpected summary: %q", a.ProjectSummary)
	}
	if len(a.Recommendations) != 2 || a.Recommendations[0] != "A" || a.Recommendations[1] != "B" {
		t.Errorf("unexpected recommendations: %v", a.Recommendations)
	}
}

func TestDecodeAnalysis_MissingKeysIsValid(t *testing.T) {
	a, err := decodeAnalysis([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ProjectSummary != "" || a.Recommendations != nil {
		t.Errorf("expected zero analysis, got %+v", a)
	}
}

func TestDecodeAnalysis_UnknownKeysIgnored(t *testing.T) {
	a, err := decodeAnalysis([]byte(`{"project_summary": "S", "confidence": 0.9}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ProjectSummary != "S" {
		t.Errorf("unexpected summary: %q", a.ProjectSummary)
	}
}

func TestDecodeAnalysis_Invalid(t *testing.T) {
	_, err := decodeAnalysis([]byte("not json at all"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestStripFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := string(stripFence([]byte(tc.in)))
			if got != tc.want {
				t.Errorf("stripFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
