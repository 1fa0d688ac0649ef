package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner provides an abstraction over executing scaffold commands
type Runner interface {
	// Run executes the command through the shell in the given directory
	// and returns its stdout. A failing command returns an error carrying
	// both output streams.
	Run(ctx context.Context, workingDir, command string) (string, error)
}

// OSRunner implements Runner using the real shell.
type OSRunner struct{}

var _ Runner = (*OSRunner)(nil)

// NewOSRunner creates a Runner backed by os/exec.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run passes the command verbatim to `sh -c` so quoted arguments
// (e.g. --import-alias "@/*") survive intact.
func (r *OSRunner) Run(ctx context.Context, workingDir, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = workingDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command failed: %w\nSTDOUT: %s\nSTDERR: %s",
			err, stdout.String(), stderr.String())
	}

	return stdout.String(), nil
}
