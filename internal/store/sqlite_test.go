package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "warden.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row, err := s.CreateProject(ctx,
		CreateProject{ID: "p1", Name: "My App", Folder: "/home/u/apps/my-app"},
		[]CreateService{
			{ID: "s1", ProjectID: "p1", Name: "web", ServiceType: "frontend", Stack: "react", Path: "/home/u/apps/my-app", URL: "my-app.test", Port: 3000, Command: "npm run dev"},
			{ID: "s2", ProjectID: "p1", Name: "api", ServiceType: "backend", Stack: "django", Path: "/home/u/apps/my-app/api", URL: "my-app.test", Port: 8000, Command: "python manage.py runserver"},
		})
	require.NoError(t, err)
	require.Equal(t, "p1", row.ID)
	require.False(t, row.CreatedAt.IsZero())

	projects, err := s.GetProjectsWithServices(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Services, 2)
	require.Equal(t, "stopped", projects[0].Services[0].Status)
	require.Equal(t, "s1", projects[0].Services[0].ID)
}

func TestSQLiteStore_ServiceOrderSurvivesReload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Ids sort against insertion order on purpose; the services of one
	// create share a timestamp, so ordering must not fall back to id.
	_, err := s.CreateProject(ctx, CreateProject{ID: "p1", Name: "a", Folder: "/apps/a"},
		[]CreateService{
			{ID: "zzz-first", ProjectID: "p1", Name: "first", ServiceType: "frontend", Stack: "react", Path: "/apps/a", URL: "a.test", Port: 3000, Command: "npm run dev"},
			{ID: "mmm-second", ProjectID: "p1", Name: "second", ServiceType: "backend", Stack: "go", Path: "/apps/a/api", URL: "a.test", Port: 8080, Command: "go run ."},
			{ID: "aaa-third", ProjectID: "p1", Name: "third", ServiceType: "backend", Stack: "django", Path: "/apps/a/jobs", URL: "a.test", Port: 8000, Command: "python manage.py runserver"},
		})
	require.NoError(t, err)

	projects, err := s.GetProjectsWithServices(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	names := make([]string, 0, len(projects[0].Services))
	for _, svc := range projects[0].Services {
		names = append(names, svc.Name)
	}
	require.Equal(t, []string{"first", "second", "third"}, names)
}

func TestSQLiteStore_GitFieldsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProject(ctx, CreateProject{
		ID: "p1", Name: "a", Folder: "/apps/a",
		GitRemote: "https://github.com/user/a.git", GitBranch: "main",
	}, nil)
	require.NoError(t, err)

	projects, err := s.GetProjectsWithServices(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "https://github.com/user/a.git", projects[0].GitRemote)
	require.Equal(t, "main", projects[0].GitBranch)

	// Projects without a repository keep empty git fields.
	row, err := s.CreateProject(ctx, CreateProject{ID: "p2", Name: "b", Folder: "/apps/b"}, nil)
	require.NoError(t, err)
	require.Empty(t, row.GitRemote)
	require.Empty(t, row.GitBranch)
}

func TestSQLiteStore_ProjectExistsByFolder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	exists, err := s.ProjectExistsByFolder(ctx, "/nowhere")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = s.CreateProject(ctx, CreateProject{ID: "p1", Name: "a", Folder: "/apps/a"}, nil)
	require.NoError(t, err)

	exists, err = s.ProjectExistsByFolder(ctx, "/apps/a")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestSQLiteStore_CreateProjectIfAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, created, err := s.CreateProjectIfAbsent(ctx,
		CreateProject{ID: "p1", Name: "a", Folder: "/apps/a"},
		[]CreateService{{ID: "s1", ProjectID: "p1", Name: "main", ServiceType: "backend", Stack: "go", Path: "/apps/a", URL: "a.test", Port: 8080, Command: "go run ."}})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "p1", first.ID)

	// Same folder again: no insert, existing row returned.
	second, created, err := s.CreateProjectIfAbsent(ctx,
		CreateProject{ID: "p2", Name: "a-again", Folder: "/apps/a"}, nil)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "p1", second.ID)

	projects, err := s.GetProjectsWithServices(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Services, 1)
}

func TestSQLiteStore_UpdateService(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProject(ctx, CreateProject{ID: "p1", Name: "a", Folder: "/apps/a"},
		[]CreateService{{ID: "s1", ProjectID: "p1", Name: "main", ServiceType: "backend", Stack: "go", Path: "/apps/a", URL: "a.test", Port: 8080, Command: "go run ."}})
	require.NoError(t, err)

	port := 9090
	name := "api"
	svc, err := s.UpdateService(ctx, "s1", UpdateService{Name: &name, Port: &port})
	require.NoError(t, err)
	require.Equal(t, "api", svc.Name)
	require.Equal(t, 9090, svc.Port)
	// Untouched fields survive.
	require.Equal(t, "go", svc.Stack)
	require.Equal(t, "stopped", svc.Status)

	_, err = s.UpdateService(ctx, "missing", UpdateService{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_DeleteProjectCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProject(ctx, CreateProject{ID: "p1", Name: "a", Folder: "/apps/a"},
		[]CreateService{{ID: "s1", ProjectID: "p1", Name: "main", ServiceType: "backend", Stack: "go", Path: "/apps/a", URL: "a.test", Port: 8080, Command: "go run ."}})
	require.NoError(t, err)

	deleted, err := s.DeleteProject(ctx, "p1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteProject(ctx, "p1")
	require.NoError(t, err)
	require.False(t, deleted)

	projects, err := s.GetProjectsWithServices(ctx)
	require.NoError(t, err)
	require.Empty(t, projects)

	// Folder is free for reuse after deletion.
	exists, err := s.ProjectExistsByFolder(ctx, "/apps/a")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSQLiteStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warden.db")

	s1, err := OpenSQLite(path)
	require.NoError(t, err)
	_, err = s1.CreateProject(context.Background(), CreateProject{ID: "p1", Name: "a", Folder: "/apps/a"}, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening applies no duplicate migrations and keeps data.
	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	projects, err := s2.GetProjectsWithServices(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
}
