package github

import (
	"context"
	"fmt"
)

// MockClient implements GitHubClient in memory for testing.
// Error hooks let tests simulate API failures per operation.
type MockClient struct {
	// Repositories returned by ListUserRepositories, in order.
	Repositories []*Repository

	// Error hooks for failure scenarios.
	ListError error
	GetError  error
}

var _ GitHubClient = (*MockClient)(nil)

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// AddRepository registers a repository with the mock.
func (c *MockClient) AddRepository(repo *Repository) {
	c.Repositories = append(c.Repositories, repo)
}

func (c *MockClient) ListUserRepositories(ctx context.Context) ([]*Repository, error) {
	if c.ListError != nil {
		return nil, c.ListError
	}

	result := make([]*Repository, len(c.Repositories))
	copy(result, c.Repositories)
	return result, nil
}

func (c *MockClient) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	if c.GetError != nil {
		return nil, c.GetError
	}

	fullName := owner + "/" + repo
	for _, r := range c.Repositories {
		if r.FullName == fullName {
			return r, nil
		}
	}
	return nil, fmt.Errorf("failed to get repository: %s not found", fullName)
}
