package tui

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/models"
)

func listFixture() []models.Project {
	return []models.Project{
		{
			ID:       "p1",
			Name:     "alpha",
			Folder:   "/workspace/alpha",
			Category: models.CategoryFullstack,
			Services: []models.Service{
				{
					ID: "s1", Name: "web", Type: models.ServiceTypeFrontend,
					Stack: models.StackReact, Path: "/workspace/alpha",
					URL: "alpha.test", Port: 3000, Command: "npm run dev",
					Status: models.StatusRunning,
				},
				{
					ID: "s2", Name: "api", Type: models.ServiceTypeBackend,
					Stack: models.StackDjango, Path: "/workspace/alpha/api",
					URL: "alpha.test", Port: 8000, Command: "python manage.py runserver",
					Status: models.StatusStopped,
				},
			},
		},
		{
			ID:       "p2",
			Name:     "beta",
			Folder:   "/workspace/beta",
			Category: models.CategoryBackend,
			Services: []models.Service{
				{
					ID: "s3", Name: "worker", Type: models.ServiceTypeBackend,
					Stack: models.StackGo, Path: "/workspace/beta",
					URL: "beta.test", Port: 8080, Command: "go run .",
					Status: models.StatusError,
				},
			},
		},
	}
}

func TestRenderProjects(t *testing.T) {
	out := RenderProjects(listFixture(), "p1")
	snaps.MatchSnapshot(t, out)
}

func TestRenderProjectsContent(t *testing.T) {
	out := RenderProjects(listFixture(), "p1")

	require.Contains(t, out, "alpha")
	require.Contains(t, out, "fullstack · 1/2 running")
	require.Contains(t, out, "alpha.test:3000")
	require.Contains(t, out, "● running")
	require.Contains(t, out, "○ stopped")
	require.Contains(t, out, "✗ error")

	// Selected project carries the marker, the other does not.
	require.Contains(t, out, "› alpha")
	if strings.Contains(out, "› beta") {
		t.Fatal("beta should not carry the selection marker")
	}
}

func TestRenderProjectsEmpty(t *testing.T) {
	out := RenderProjects(nil, "")
	require.Contains(t, out, "No projects registered")
}
