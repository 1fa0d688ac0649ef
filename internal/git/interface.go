package git

import (
	"context"
	"strings"
)

// GitClient provides an abstraction over git operations for testability.
//
// Clone runs inside the destination directory, so the repository ends up
// at destDir/<repo-name> the same way a manual `git clone` there would.
type GitClient interface {
	// Clone clones url into destDir.
	Clone(url, destDir string) error

	// Repository inspection; dir is the repository root.
	IsGitRepo(dir string) (bool, error)
	RemoteURL(dir string) (string, error)
	CurrentBranch(dir string) (string, error)

	// Context support for network operations
	WithContext(ctx context.Context) GitClient
}

// RepoNameFromURL extracts the repository folder name a clone of url
// would create.
// Examples:
//   - "https://github.com/user/warden.git" -> "warden"
//   - "git@github.com:user/warden.git" -> "warden"
func RepoNameFromURL(url string) string {
	name := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if idx := strings.LastIndexAny(name, "/:"); idx != -1 {
		name = name[idx+1:]
	}
	return name
}
