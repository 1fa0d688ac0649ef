package cli

import (
	"context"
	"fmt"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/git"
	"github.com/yuuhLKT/warden/internal/github"
	"github.com/yuuhLKT/warden/internal/ide"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/registry"
	"github.com/yuuhLKT/warden/internal/scaffold"
	"github.com/yuuhLKT/warden/internal/scanner"
	"github.com/yuuhLKT/warden/internal/settings"
	"github.com/yuuhLKT/warden/internal/store"
)

// Deps bundles every boundary a command can touch. Commands receive it
// from the composition root; tests build one from mocks.
type Deps struct {
	FS       filesystem.FileSystem
	Store    store.Store
	Scanner  scanner.Scanner
	Git      git.GitClient
	GitHub   github.GitHubClient
	Launcher ide.Launcher
	Runner   scaffold.Runner
}

// loadSettings reads the persisted settings through the filesystem boundary.
func (d Deps) loadSettings() (settings.Settings, error) {
	return settings.NewStore(d.FS).Load()
}

// loadRegistry builds a registry over the store and hydrates it.
func (d Deps) loadRegistry(ctx context.Context) (*registry.Registry, error) {
	r := registry.New(d.Store)
	if err := r.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return r, nil
}

// inspectGit fills the detected project's git identity from its folder.
// Best effort: a folder that is not a repository, or a git failure, just
// leaves the fields empty.
func (d Deps) inspectGit(detected *models.DetectedProject) {
	isRepo, err := d.Git.IsGitRepo(detected.Path)
	if err != nil || !isRepo {
		return
	}
	if remote, err := d.Git.RemoteURL(detected.Path); err == nil {
		detected.GitRemote = remote
	}
	if branch, err := d.Git.CurrentBranch(detected.Path); err == nil {
		detected.GitBranch = branch
	}
}
