package scaffold

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/models"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	templates := catalog.Templates()
	require.NotEmpty(t, templates)

	seen := map[string]bool{}
	for _, tmpl := range templates {
		if tmpl.ID == "" {
			t.Fatalf("template %q has empty id", tmpl.Name)
		}
		if seen[tmpl.ID] {
			t.Fatalf("duplicate template id %s", tmpl.ID)
		}
		seen[tmpl.ID] = true

		require.NotEmpty(t, tmpl.Command, "template %s", tmpl.ID)
		require.NotEmpty(t, tmpl.Description, "template %s", tmpl.ID)
	}
}

func TestCatalogByPackageManager(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	npm := catalog.ByPackageManager(models.ScaffoldNpm)
	require.NotEmpty(t, npm)
	for _, tmpl := range npm {
		require.Equal(t, models.ScaffoldNpm, tmpl.PackageManager)
	}

	require.Empty(t, catalog.ByPackageManager(models.ScaffoldPipenv))
}

func TestCatalogGet(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	tmpl, err := catalog.Get("nextjs-app")
	require.NoError(t, err)
	require.Equal(t, "Next.js App", tmpl.Name)
	require.Equal(t, 3000, tmpl.DefaultPort)
	require.True(t, tmpl.HasTag("nextjs"))

	_, err = catalog.Get("does-not-exist")
	require.Error(t, err)
}

func TestRenderCommandReplacesEveryPlaceholder(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	for _, tmpl := range catalog.Templates() {
		rendered, err := RenderCommand(tmpl, CommandData{Name: "my-app"})
		require.NoError(t, err, "template %s", tmpl.ID)

		if strings.Contains(rendered, "{{") {
			t.Fatalf("template %s left placeholders in %q", tmpl.ID, rendered)
		}
		require.Contains(t, rendered, "my-app", "template %s", tmpl.ID)
	}
}

func TestRenderCommandKeepsQuotedArguments(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	tmpl, err := catalog.Get("nextjs-app")
	require.NoError(t, err)

	rendered, err := RenderCommand(tmpl, CommandData{Name: "dashboard"})
	require.NoError(t, err)
	require.Contains(t, rendered, `--import-alias "@/*"`)
	require.Contains(t, rendered, "create-next-app@latest dashboard")
}

func TestRenderCommandSprigFunctions(t *testing.T) {
	tmpl := Template{ID: "custom", Command: "mk {{.Name | lower}}"}

	rendered, err := RenderCommand(tmpl, CommandData{Name: "MyApp"})
	require.NoError(t, err)
	require.Equal(t, "mk myapp", rendered)
}

func TestBuildProjectForm(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	tmpl, err := catalog.Get("vite-react")
	require.NoError(t, err)

	form := BuildProjectForm(tmpl, ProjectInput{
		Name:   "dashboard",
		Folder: "/workspace",
		URL:    "dashboard.test",
	})

	require.Equal(t, "dashboard", form.Name)
	require.Equal(t, "/workspace/dashboard", form.Folder)
	require.Len(t, form.Services, 1)

	svc := form.Services[0]
	require.Equal(t, "Vite + React", svc.Name)
	require.Equal(t, models.ServiceTypeFrontend, svc.Type)
	require.Equal(t, models.StackReact, svc.Stack)
	require.Equal(t, "/workspace/dashboard", svc.Path)
	require.Equal(t, 5173, svc.Port)
	require.Equal(t, "pnpm run dev", svc.Command)

	require.NoError(t, form.Validate())
}

func TestBuildProjectFormStackMapping(t *testing.T) {
	cases := []struct {
		id    string
		stack models.Stack
	}{
		{"nextjs-app", models.StackNext},
		{"vite-vue", models.StackVue},
		{"nestjs-api", models.StackNestJS},
		{"django-app", models.StackDjango},
		{"laravel-app", models.StackLaravel},
		{"axum-service", models.StackRust},
		{"spring-gradle", models.StackNestJS},
		{"phoenix-app", models.StackOther},
	}

	catalog, err := LoadCatalog()
	require.NoError(t, err)

	for _, tc := range cases {
		tmpl, err := catalog.Get(tc.id)
		require.NoError(t, err)

		form := BuildProjectForm(tmpl, ProjectInput{Name: "x", Folder: "/w", URL: "x.test"})
		require.Equal(t, tc.stack, form.Services[0].Stack, "template %s", tc.id)
	}
}

func TestBuildProjectFormPortOverride(t *testing.T) {
	tmpl := Template{ID: "t", Name: "T", Category: "backend", DefaultPort: 8000}

	form := BuildProjectForm(tmpl, ProjectInput{Name: "x", Folder: "/w", URL: "x.test", Port: 9001})
	require.Equal(t, 9001, form.Services[0].Port)

	form = BuildProjectForm(tmpl, ProjectInput{Name: "x", Folder: "/w", URL: "x.test"})
	require.Equal(t, 8000, form.Services[0].Port)

	tmpl.DefaultPort = 0
	form = BuildProjectForm(tmpl, ProjectInput{Name: "x", Folder: "/w", URL: "x.test"})
	require.Equal(t, models.DefaultPort, form.Services[0].Port)
}

func TestMockRunner(t *testing.T) {
	mock := NewMockRunner()
	mock.Output = "created"

	out, err := mock.Run(context.Background(), "/workspace", "npx create-next-app my-app")
	require.NoError(t, err)
	require.Equal(t, "created", out)
	require.Len(t, mock.RunCalls, 1)
	require.Equal(t, "/workspace", mock.RunCalls[0].WorkingDir)

	_, err = mock.Run(context.Background(), "/workspace", "   ")
	require.ErrorContains(t, err, "empty command")

	mock.RunError = errors.New("exit status 1")
	_, err = mock.Run(context.Background(), "/workspace", "false")
	require.ErrorContains(t, err, "exit status 1")
}
