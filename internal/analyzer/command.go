package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Default invocation for the external analysis tool.
const DefaultBin = "llm"

// DefaultArgs returns the default arguments for the analysis tool. The tool
// is expected to read context on stdin and reply with a JSON object.
func DefaultArgs() []string {
	return []string{"analyze", "--format", "json"}
}

// CommandAnalyzer analyzes context by spawning an external analysis tool,
// feeding it the context on standard input and decoding its standard output
// as JSON. The call blocks until the child exits.
type CommandAnalyzer struct {
	// Bin is the analysis tool binary. Empty means DefaultBin.
	Bin string

	// Args are the tool arguments. Nil means DefaultArgs().
	Args []string

	// Verbose echoes the spawned command and surfaces the child's stderr
	// on failure.
	Verbose bool
}

// Analyze runs the analysis tool over the given context text.
func (a *CommandAnalyzer) Analyze(ctx context.Context, input string) (*Analysis, error) {
	bin := a.Bin
	if bin == "" {
		bin = DefaultBin
	}
	args := a.Args
	if args == nil {
		args = DefaultArgs()
	}

	if a.Verbose {
		fmt.Printf("Running: %s %s\n", bin, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q is not installed or not on PATH", ErrToolNotFound, bin)
		}
		if a.Verbose && stderr.Len() > 0 {
			fmt.Fprintf(os.Stderr, "stderr: %s\n", strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrToolFailed, bin, err)
	}

	return decodeAnalysis(stdout.Bytes())
}
