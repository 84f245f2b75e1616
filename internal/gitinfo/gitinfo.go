// Package gitinfo summarizes the Git state of an inspected directory.
// The summary enriches reports for directories that happen to be
// repositories; non-repository directories simply have no summary.
package gitinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v6"
)

// Summary captures repository metadata for a single report section.
type Summary struct {
	// Branch is the short name of the checked-out branch.
	Branch string `json:"branch"`

	// CommitCount is the number of commits reachable from HEAD.
	CommitCount int `json:"commit_count"`

	// LastHash is the abbreviated hash of the most recent commit.
	LastHash string `json:"last_hash"`

	// LastSubject is the first line of the most recent commit message.
	LastSubject string `json:"last_subject"`

	// LastAuthor is the author name of the most recent commit.
	LastAuthor string `json:"last_author"`

	// LastWhen is the author timestamp of the most recent commit.
	LastWhen time.Time `json:"last_when"`
}

// Summarize opens the directory as a Git repository and walks its history
// from HEAD. Returns an error when the directory is not a repository or has
// no commits yet.
func Summarize(path string) (*Summary, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}
	defer iter.Close()

	summary := &Summary{Branch: head.Name().Short()}

	for {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		if summary.CommitCount == 0 {
			hash := commit.Hash.String()
			if len(hash) > 8 {
				hash = hash[:8]
			}
			summary.LastHash = hash
			summary.LastSubject = firstLine(commit.Message)
			summary.LastAuthor = commit.Author.Name
			summary.LastWhen = commit.Author.When
		}
		summary.CommitCount++
	}

	if summary.CommitCount == 0 {
		return nil, fmt.Errorf("repository at %q has no commits", path)
	}
	return summary, nil
}

func firstLine(message string) string {
	if idx := strings.Index(message, "\n"); idx >= 0 {
		return strings.TrimSpace(message[:idx])
	}
	return strings.TrimSpace(message)
}
