package git

import (
	"context"
	"fmt"
	"path/filepath"
)

// MockRepo describes one repository known to the mock client.
type MockRepo struct {
	RemoteURL string
	Branch    string
}

// CloneCall records one Clone invocation.
type CloneCall struct {
	URL     string
	DestDir string
}

// MockGitClient implements GitClient in memory for testing.
// Error hooks let tests simulate git failures per operation.
type MockGitClient struct {
	// Repos maps repository directories to their state.
	Repos map[string]MockRepo

	// CloneCalls records every Clone invocation in order.
	CloneCalls []CloneCall

	// Error hooks for failure scenarios.
	CloneError         error
	IsGitRepoError     error
	RemoteURLError     error
	CurrentBranchError error
}

var _ GitClient = (*MockGitClient)(nil)

// NewMockGitClient creates an empty MockGitClient.
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		Repos: make(map[string]MockRepo),
	}
}

// AddRepo registers a repository directory with the mock.
func (g *MockGitClient) AddRepo(dir string, repo MockRepo) {
	g.Repos[filepath.Clean(dir)] = repo
}

// Clone records the call and registers the resulting repository as the
// real client would leave it on disk.
func (g *MockGitClient) Clone(url, destDir string) error {
	g.CloneCalls = append(g.CloneCalls, CloneCall{URL: url, DestDir: destDir})
	if g.CloneError != nil {
		return g.CloneError
	}
	if destDir == "" {
		return fmt.Errorf("destination path cannot be empty")
	}

	repoDir := filepath.Join(destDir, RepoNameFromURL(url))
	g.Repos[filepath.Clean(repoDir)] = MockRepo{RemoteURL: url, Branch: "main"}
	return nil
}

func (g *MockGitClient) IsGitRepo(dir string) (bool, error) {
	if g.IsGitRepoError != nil {
		return false, g.IsGitRepoError
	}
	_, ok := g.Repos[filepath.Clean(dir)]
	return ok, nil
}

func (g *MockGitClient) RemoteURL(dir string) (string, error) {
	if g.RemoteURLError != nil {
		return "", g.RemoteURLError
	}
	repo, ok := g.Repos[filepath.Clean(dir)]
	if !ok {
		return "", nil
	}
	return repo.RemoteURL, nil
}

func (g *MockGitClient) CurrentBranch(dir string) (string, error) {
	if g.CurrentBranchError != nil {
		return "", g.CurrentBranchError
	}
	repo, ok := g.Repos[filepath.Clean(dir)]
	if !ok {
		return "", fmt.Errorf("failed to get current branch: not a git repository")
	}
	return repo.Branch, nil
}

// WithContext returns the client unchanged; the mock has no network
// operations to cancel.
func (g *MockGitClient) WithContext(ctx context.Context) GitClient {
	return g
}
