package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultBin is the packaging tool spawned when no binary is configured.
const DefaultBin = "repomix"

// RepomixSource extracts context by spawning a repomix-compatible packaging
// tool and capturing its standard output in full. The call blocks until the
// child exits.
type RepomixSource struct {
	// Bin is the packaging tool binary. Empty means DefaultBin.
	Bin string

	// Verbose echoes the spawned command and surfaces the child's stderr
	// on failure.
	Verbose bool
}

// Extract runs `<bin> --stdout <dir>` and returns the captured output.
func (s *RepomixSource) Extract(ctx context.Context, dir string) (string, error) {
	bin := s.Bin
	if bin == "" {
		bin = DefaultBin
	}
	args := []string{"--stdout", dir}

	if s.Verbose {
		fmt.Printf("Running: %s %s\n", bin, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %q is not installed or not on PATH", ErrToolNotFound, bin)
		}
		if s.Verbose && stderr.Len() > 0 {
			fmt.Fprintf(os.Stderr, "stderr: %s\n", strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%w: %s: %v", ErrToolFailed, bin, err)
	}

	text := stdout.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s emitted nothing for %q", ErrEmptyContext, bin, dir)
	}
	return text, nil
}
