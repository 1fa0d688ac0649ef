package scaffold

import (
	"context"
	"fmt"
	"strings"
)

// RunCall records one Run invocation.
type RunCall struct {
	WorkingDir string
	Command    string
}

// MockRunner implements Runner in memory for testing.
type MockRunner struct {
	// Output returned on success.
	Output string

	// RunCalls records every Run invocation in order.
	RunCalls []RunCall

	// RunError simulates a failing command.
	RunError error
}

var _ Runner = (*MockRunner)(nil)

// NewMockRunner creates an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (r *MockRunner) Run(ctx context.Context, workingDir, command string) (string, error) {
	r.RunCalls = append(r.RunCalls, RunCall{WorkingDir: workingDir, Command: command})
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("empty command")
	}
	if r.RunError != nil {
		return "", r.RunError
	}
	return r.Output, nil
}
