package github

import (
	"context"
	"time"
)

// GitHubClient provides an abstraction over GitHub API operations
type GitHubClient interface {
	// ListUserRepositories returns the authenticated user's repositories,
	// most recently pushed first.
	ListUserRepositories(ctx context.Context) ([]*Repository, error)

	// GetRepository fetches a single repository by owner and name.
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
}

// Repository represents a GitHub repository
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	Description   string
	URL           string
	CloneURL      string
	SSHURL        string
	DefaultBranch string
	Language      string
	Private       bool
	PushedAt      time.Time
}
