package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/store"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "my-app", Slugify("My App"))
	require.Equal(t, "my-app", Slugify("  My   App  "))
	require.Equal(t, "already-slugged", Slugify("already-slugged"))
	require.Equal(t, "tab-and-newline", Slugify("Tab\tand\nNewline"))
}

func TestServiceURLFallsBackToDefaultSuffix(t *testing.T) {
	require.Equal(t, "my-app.dev", ServiceURL("My App", "dev"))
	require.Equal(t, "my-app.test", ServiceURL("My App", ""))
}

func TestMapDetectedProjectSingleFrontend(t *testing.T) {
	detected := models.DetectedProject{
		Name: "My App",
		Path: "/home/u/apps/my-app",
		Services: []models.DetectedService{
			{Name: "web", Category: "frontend", Stack: "react", Path: "/home/u/apps/my-app"},
		},
	}

	project := MapDetectedProject(detected, "test")

	require.Equal(t, "My App", project.Name)
	require.Equal(t, "/home/u/apps/my-app", project.Folder)
	require.Equal(t, models.CategoryFrontend, project.Category)
	require.Len(t, project.Services, 1)

	svc := project.Services[0]
	require.Equal(t, models.StackReact, svc.Stack)
	require.Equal(t, models.ServiceTypeFrontend, svc.Type)
	require.Equal(t, "my-app.test", svc.URL)
	require.Equal(t, models.DefaultPort, svc.Port)
	require.Equal(t, models.DefaultCommand, svc.Command)
	require.Equal(t, models.StatusStopped, svc.Status)
}

func TestMapDetectedProjectFullstackSharesHost(t *testing.T) {
	detected := models.DetectedProject{
		Name: "My App",
		Path: "/home/u/apps/my-app",
		Services: []models.DetectedService{
			{Name: "web", Category: "frontend", Stack: "react"},
			{Name: "api", Category: "api", Stack: "django"},
		},
	}

	project := MapDetectedProject(detected, "test")

	require.Equal(t, models.CategoryFullstack, project.Category)
	require.Len(t, project.Services, 2)
	require.Equal(t, "my-app.test", project.Services[0].URL)
	require.Equal(t, project.Services[0].URL, project.Services[1].URL)
	require.Equal(t, models.ServiceTypeBackend, project.Services[1].Type)
	require.Equal(t, models.StackDjango, project.Services[1].Stack)
}

func TestMapDetectedProjectKeepsDetectedPortAndCommand(t *testing.T) {
	detected := models.DetectedProject{
		Name: "svelte-site",
		Path: "/home/u/apps/svelte-site",
		Services: []models.DetectedService{
			{Name: "site", Category: "frontend", Stack: "svelte", Port: 5173, DevCommand: "pnpm dev"},
		},
	}

	project := MapDetectedProject(detected, "test")

	require.Equal(t, 5173, project.Services[0].Port)
	require.Equal(t, "pnpm dev", project.Services[0].Command)
}

func TestMapDetectedProjectAssignsFreshIDs(t *testing.T) {
	detected := models.DetectedProject{
		Name:     "twice",
		Path:     "/home/u/apps/twice",
		Services: []models.DetectedService{{Name: "web", Category: "frontend", Stack: "react"}},
	}

	first := MapDetectedProject(detected, "test")
	second := MapDetectedProject(detected, "test")

	if first.ID == second.ID {
		t.Fatalf("expected distinct project ids, both were %s", first.ID)
	}
	require.NotEqual(t, first.Services[0].ID, second.Services[0].ID)
}

func TestMapDetectedProjectCoercesUnknownStack(t *testing.T) {
	detected := models.DetectedProject{
		Name:     "legacy",
		Path:     "/home/u/apps/legacy",
		Services: []models.DetectedService{{Name: "core", Category: "worker", Stack: "cobol"}},
	}

	project := MapDetectedProject(detected, "test")

	require.Equal(t, models.StackOther, project.Services[0].Stack)
	require.Equal(t, models.ServiceTypeBackend, project.Services[0].Type)
}

func TestProjectFromStoreCoercesLooseColumns(t *testing.T) {
	now := time.Now().UTC()
	row := store.ProjectWithServices{
		ProjectRow: store.ProjectRow{
			ID:        "p1",
			Name:      "legacy",
			Folder:    "/home/u/apps/legacy",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Services: []store.ServiceRow{
			{ID: "s1", ProjectID: "p1", Name: "web", ServiceType: "frontend", Stack: "react", Status: "running"},
			{ID: "s2", ProjectID: "p1", Name: "old", ServiceType: "???", Stack: "fortran", Status: "???"},
		},
	}

	project := projectFromStore(row)

	require.Equal(t, models.CategoryFullstack, project.Category)
	require.Equal(t, models.StatusRunning, project.Services[0].Status)
	require.Equal(t, models.ServiceTypeBackend, project.Services[1].Type)
	require.Equal(t, models.StackOther, project.Services[1].Stack)
	require.Equal(t, models.StatusStopped, project.Services[1].Status)
}
