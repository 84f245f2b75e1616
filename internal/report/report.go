// Package report renders an analysis into a plain-text report. The report
// body carries no styling so the bytes written to a file match the bytes
// printed to the console.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Yates-Labs/lens/internal/analyzer"
	"github.com/Yates-Labs/lens/internal/gitinfo"
)

const lineWidth = 80

// Fallback lines used when the analysis omits a field.
const (
	NoSummary         = "No project summary available."
	NoRecommendations = "No recommendations available."
)

// Params are the inputs to Render. Analysis may be empty but not nil-checked
// away: an empty analysis still renders a complete report with fallbacks.
type Params struct {
	// Directory is the inspected project directory.
	Directory string

	// Analysis is the structured result to render.
	Analysis *analyzer.Analysis

	// Repo optionally enriches the report with repository activity.
	// Nil when the directory is not a Git repository.
	Repo *gitinfo.Summary

	// GeneratedAt stamps the report banner.
	GeneratedAt time.Time
}

// Render assembles the report. It always succeeds: missing analysis fields
// fall back to placeholder lines, never errors.
func Render(p Params) string {
	var b strings.Builder

	banner := strings.Repeat("=", lineWidth)
	divider := strings.Repeat("-", lineWidth)

	b.WriteString(banner + "\n")
	b.WriteString(fmt.Sprintf("PROJECT INSPECTOR REPORT - %s\n", baseName(p.Directory)))
	b.WriteString(fmt.Sprintf("Generated on: %s\n", p.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(banner + "\n\n")

	b.WriteString("PROJECT OVERVIEW\n")
	b.WriteString(divider + "\n")
	if p.Analysis != nil && p.Analysis.ProjectSummary != "" {
		b.WriteString(p.Analysis.ProjectSummary + "\n")
	} else {
		b.WriteString(NoSummary + "\n")
	}
	b.WriteString("\n")

	b.WriteString("FILE STATISTICS\n")
	b.WriteString(divider + "\n")
	// The extracted context is an opaque blob; this section stays a stub.
	b.WriteString("Context extracted with repomix\n\n")

	if p.Repo != nil {
		b.WriteString("REPOSITORY ACTIVITY\n")
		b.WriteString(divider + "\n")
		b.WriteString(fmt.Sprintf("Branch: %s\n", p.Repo.Branch))
		b.WriteString(fmt.Sprintf("Commits: %d\n", p.Repo.CommitCount))
		b.WriteString(fmt.Sprintf("Last commit: %s %s (%s, %s)\n",
			p.Repo.LastHash,
			p.Repo.LastSubject,
			p.Repo.LastAuthor,
			p.Repo.LastWhen.Format("2006-01-02")))
		b.WriteString("\n")
	}

	b.WriteString("RECOMMENDATIONS\n")
	b.WriteString(divider + "\n")
	if p.Analysis != nil && len(p.Analysis.Recommendations) > 0 {
		for i, rec := range p.Analysis.Recommendations {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
	} else {
		b.WriteString(NoRecommendations + "\n")
	}

	b.WriteString("\n" + banner + "\n")

	return b.String()
}

// baseName resolves the directory to its absolute basename for the banner.
func baseName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return filepath.Base(abs)
}
