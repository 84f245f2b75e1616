// Package source provides project context extraction. It defines a
// swappable ContextSource interface with a production implementation backed
// by an external packaging tool and a deterministic mock for testing.
package source

import (
	"context"
	"errors"
)

var (
	ErrToolNotFound = errors.New("packaging tool not found")
	ErrToolFailed   = errors.New("packaging tool failed")
	ErrEmptyContext = errors.New("packaging tool produced no output")
)

// ContextSource extracts a flattened text representation of a project
// directory. Implementations must be stateless and safe for reuse across
// runs.
type ContextSource interface {
	// Extract flattens the directory into a single text blob.
	// Returns the extracted text or an error if extraction fails.
	Extract(ctx context.Context, dir string) (string, error)
}
