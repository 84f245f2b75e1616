// Package inspector drives the inspection pipeline: validate the target
// directory, extract its context, and analyze it. The pipeline is a strict
// forward sequence; the first failing stage aborts the run.
package inspector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Yates-Labs/lens/internal/analyzer"
	"github.com/Yates-Labs/lens/internal/gitinfo"
	"github.com/Yates-Labs/lens/internal/source"
)

var (
	ErrNotExist     = errors.New("directory does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
)

// ValidateDirectory confirms the path exists and is a directory.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotExist, path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrNotDirectory, path)
	}
	return nil
}

// Inspection is the result of a full pipeline pass, carrying everything the
// report renderer needs.
type Inspection struct {
	// Directory is the inspected project directory.
	Directory string

	// Context is the flattened text extracted from the directory.
	Context string

	// Analysis is the structured analysis of the context.
	Analysis *analyzer.Analysis

	// Repo summarizes the directory's Git state, nil for non-repositories.
	Repo *gitinfo.Summary

	// GeneratedAt is when the inspection finished.
	GeneratedAt time.Time
}

// Inspector runs the pipeline over its configured collaborators. Both
// collaborators are required; Progress is optional.
type Inspector struct {
	// Source extracts project context from a directory.
	Source source.ContextSource

	// Analyzer turns extracted context into an Analysis.
	Analyzer analyzer.ContextAnalyzer

	// Progress, when set, receives plain status messages at stage
	// boundaries. The caller owns presentation.
	Progress func(msg string)
}

// Run executes Validate → Extract → Analyze for the given directory.
// The analyzer is never invoked when extraction fails.
func (i *Inspector) Run(ctx context.Context, dir string) (*Inspection, error) {
	if i.Source == nil || i.Analyzer == nil {
		return nil, errors.New("inspector requires a source and an analyzer")
	}

	if err := ValidateDirectory(dir); err != nil {
		return nil, err
	}

	i.progress(fmt.Sprintf("Analyzing project in %q...", dir))

	text, err := i.Source.Extract(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("context extraction failed: %w", err)
	}

	i.progress("Context extraction complete.")
	i.progress("Analyzing project structure...")

	analysis, err := i.Analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("context analysis failed: %w", err)
	}

	insp := &Inspection{
		Directory:   dir,
		Context:     text,
		Analysis:    analysis,
		GeneratedAt: time.Now(),
	}

	// Best effort: a directory that is not a repository gets no summary.
	if summary, err := gitinfo.Summarize(dir); err == nil {
		insp.Repo = summary
	}

	return insp, nil
}

func (i *Inspector) progress(msg string) {
	if i.Progress != nil {
		i.Progress(msg)
	}
}
