package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRepository(owner, name string) *Repository {
	return &Repository{
		Owner:         owner,
		Name:          name,
		FullName:      owner + "/" + name,
		URL:           "https://github.com/" + owner + "/" + name,
		CloneURL:      "https://github.com/" + owner + "/" + name + ".git",
		SSHURL:        "git@github.com:" + owner + "/" + name + ".git",
		DefaultBranch: "main",
	}
}

func TestMockListUserRepositories(t *testing.T) {
	mock := NewMockClient()
	mock.AddRepository(testRepository("user", "warden"))
	mock.AddRepository(testRepository("user", "dotfiles"))

	repos, err := mock.ListUserRepositories(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 2)
	require.Equal(t, "user/warden", repos[0].FullName)
	require.Equal(t, "user/dotfiles", repos[1].FullName)
}

func TestMockListReturnsCopy(t *testing.T) {
	mock := NewMockClient()
	mock.AddRepository(testRepository("user", "warden"))

	repos, err := mock.ListUserRepositories(context.Background())
	require.NoError(t, err)

	repos[0] = testRepository("other", "thing")

	again, err := mock.ListUserRepositories(context.Background())
	require.NoError(t, err)
	require.Equal(t, "user/warden", again[0].FullName)
}

func TestMockGetRepository(t *testing.T) {
	mock := NewMockClient()
	mock.AddRepository(testRepository("user", "warden"))

	repo, err := mock.GetRepository(context.Background(), "user", "warden")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/user/warden.git", repo.CloneURL)

	_, err = mock.GetRepository(context.Background(), "user", "missing")
	if err == nil {
		t.Fatal("expected error for unknown repository")
	}
}

func TestMockErrorHooks(t *testing.T) {
	mock := NewMockClient()
	mock.ListError = errors.New("rate limited")
	mock.GetError = errors.New("rate limited")

	_, err := mock.ListUserRepositories(context.Background())
	require.ErrorContains(t, err, "rate limited")

	_, err = mock.GetRepository(context.Background(), "user", "warden")
	require.ErrorContains(t, err, "rate limited")
}
