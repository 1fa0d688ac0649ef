package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// Clone clones url into destDir by running git clone there.
func (g *OSGitClient) Clone(url, destDir string) error {
	if destDir == "" {
		return fmt.Errorf("destination path cannot be empty")
	}

	cmd := exec.CommandContext(g.ctx, "git", "clone", url)
	cmd.Dir = destDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("failed to clone %s: %w: %s", url, err, msg)
		}
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}

	return nil
}

// IsGitRepo checks if dir is inside a git repository
func (g *OSGitClient) IsGitRepo(dir string) (bool, error) {
	cmd := exec.CommandContext(g.ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = dir

	if err := cmd.Run(); err != nil {
		// Not a git repo
		return false, nil
	}

	return true, nil
}

// RemoteURL returns the origin fetch URL, empty when no remote is set.
func (g *OSGitClient) RemoteURL(dir string) (string, error) {
	cmd := exec.CommandContext(g.ctx, "git", "remote", "get-url", "origin")
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		// Repos without an origin remote are common for local projects.
		return "", nil
	}

	return strings.TrimSpace(out.String()), nil
}

// CurrentBranch returns the current git branch name
func (g *OSGitClient) CurrentBranch(dir string) (string, error) {
	cmd := exec.CommandContext(g.ctx, "git", "branch", "--show-current")
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}

	return strings.TrimSpace(out.String()), nil
}
