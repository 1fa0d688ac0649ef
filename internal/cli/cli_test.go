package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/git"
	"github.com/yuuhLKT/warden/internal/github"
	"github.com/yuuhLKT/warden/internal/ide"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/scaffold"
	"github.com/yuuhLKT/warden/internal/scanner"
	"github.com/yuuhLKT/warden/internal/store"
)

type testEnv struct {
	deps     Deps
	fs       *filesystem.MockFileSystem
	store    *store.MockStore
	scanner  *scanner.MockScanner
	git      *git.MockGitClient
	github   *github.MockClient
	launcher *ide.MockLauncher
	runner   *scaffold.MockRunner
}

func newTestEnv() *testEnv {
	env := &testEnv{
		fs:       filesystem.NewMockFileSystem(),
		store:    store.NewMockStore(),
		scanner:  &scanner.MockScanner{},
		git:      git.NewMockGitClient(),
		github:   github.NewMockClient(),
		launcher: ide.NewMockLauncher(),
		runner:   scaffold.NewMockRunner(),
	}
	env.deps = Deps{
		FS:       env.fs,
		Store:    env.store,
		Scanner:  env.scanner,
		Git:      env.git,
		GitHub:   env.github,
		Launcher: env.launcher,
		Runner:   env.runner,
	}
	return env
}

// seedProject registers a project directly through the store.
func (e *testEnv) seedProject(t *testing.T, id, name, folder string) {
	t.Helper()
	_, err := e.store.CreateProject(context.Background(),
		store.CreateProject{ID: id, Name: name, Folder: folder},
		[]store.CreateService{
			{
				ID: id + "-s1", ProjectID: id, Name: "web",
				ServiceType: "frontend", Stack: "react", Path: folder,
				URL: name + ".test", Port: 3000, Command: "npm run dev",
			},
		})
	require.NoError(t, err)
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddCommandWithFlags(t *testing.T) {
	env := newTestEnv()

	out, err := runCommand(t, NewAddCommand(env.deps),
		"--name", "My App", "--folder", "/workspace/my-app",
		"--stack", "react", "--port", "5173", "--command", "pnpm dev")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Registered My App")

	require.Equal(t, 1, env.store.FolderCount("/workspace/my-app"))
}

func TestAddCommandRejectsInvalidPort(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewAddCommand(env.deps),
		"--name", "My App", "--folder", "/workspace/my-app", "--port", "80")
	require.Error(t, err)
	require.Equal(t, 0, env.store.ProjectCount())
}

func TestListCommand(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewListCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "alpha")
	require.Contains(t, out, "○ stopped")
}

func TestListCommandEmpty(t *testing.T) {
	env := newTestEnv()

	out, err := runCommand(t, NewListCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "No projects registered")
}

func TestScanCommandRegistersProjects(t *testing.T) {
	env := newTestEnv()
	env.scanner.Projects = []models.DetectedProject{
		{
			Name: "alpha", Path: "/workspace/alpha",
			Services: []models.DetectedService{
				{Name: "web", Category: "frontend", Stack: "react", Path: "/workspace/alpha"},
			},
		},
		{
			Name: "beta", Path: "/workspace/beta",
			Services: []models.DetectedService{
				{Name: "api", Category: "backend", Stack: "go", Path: "/workspace/beta"},
			},
		},
	}

	_, err := runCommand(t, NewScanCommand(env.deps), "/workspace")
	require.NoError(t, err)

	require.Equal(t, 1, env.store.FolderCount("/workspace/alpha"))
	require.Equal(t, 1, env.store.FolderCount("/workspace/beta"))
}

func TestScanCommandSkipsRegistered(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")
	env.scanner.Projects = []models.DetectedProject{
		{
			Name: "alpha", Path: "/workspace/alpha",
			Services: []models.DetectedService{
				{Name: "web", Category: "frontend", Stack: "react", Path: "/workspace/alpha"},
			},
		},
	}

	before := len(env.store.CreateCalls)
	_, err := runCommand(t, NewScanCommand(env.deps), "/workspace")
	require.NoError(t, err)

	require.Equal(t, before, len(env.store.CreateCalls))
	require.Equal(t, 1, env.store.FolderCount("/workspace/alpha"))
}

func TestScanCommandWithoutPath(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewScanCommand(env.deps))
	require.ErrorContains(t, err, "no workspace path")
}

func TestRemoveCommandByName(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewRemoveCommand(env.deps), "alpha")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Removed alpha")
	require.Equal(t, 0, env.store.ProjectCount())
}

func TestRemoveCommandUnknown(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewRemoveCommand(env.deps), "ghost")
	require.ErrorContains(t, err, "not found")
}

func TestRenameCommand(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewRenameCommand(env.deps), "alpha", "omega")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Renamed alpha to omega")

	rows, err := env.store.GetProjectsWithServices(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "omega", rows[0].Name)
}

func TestOpenCommandUsesConfiguredEditor(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewOpenCommand(env.deps), "alpha")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Opened alpha with zed")

	require.Len(t, env.launcher.OpenCalls, 1)
	require.Equal(t, ide.OpenCall{Command: "zed", Path: "/workspace/alpha"}, env.launcher.OpenCalls[0])
}

func TestOpenCommandIDEOverride(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	_, err := runCommand(t, NewOpenCommand(env.deps), "alpha", "--ide", "vscode")
	require.NoError(t, err)

	require.Len(t, env.launcher.OpenCalls, 1)
	require.Equal(t, "code", env.launcher.OpenCalls[0].Command)
}

func TestStartCommandMarksRunning(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewStartCommand(env.deps), "alpha")
	require.NoError(t, err)
	require.Contains(t, out, "● running")

	// Statuses are local dashboard state; the store keeps them stopped.
	rows, err := env.store.GetProjectsWithServices(context.Background())
	require.NoError(t, err)
	require.Equal(t, "stopped", rows[0].Services[0].Status)
}

func TestToggleCommandByServiceName(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewToggleCommand(env.deps), "web", "alpha")
	require.NoError(t, err)
	require.Contains(t, out, "● running")
}

func TestToggleCommandUnknownService(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	_, err := runCommand(t, NewToggleCommand(env.deps), "ghost", "alpha")
	require.ErrorContains(t, err, "service ghost not found")
}

func TestLifecycleWithoutSelection(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	_, err := runCommand(t, NewStartCommand(env.deps))
	require.ErrorContains(t, err, "none selected")
}

func TestSelectThenStart(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewSelectCommand(env.deps), "alpha")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Selected alpha")

	out, err = runCommand(t, NewStartCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "● running")
}

func TestSelectThenListShowsMarker(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")
	env.seedProject(t, "p2", "beta", "/workspace/beta")

	_, err := runCommand(t, NewSelectCommand(env.deps), "alpha")
	require.NoError(t, err)

	// The marker survives into a fresh invocation through the settings file.
	out, err := runCommand(t, NewListCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "› alpha")
	require.NotContains(t, out, "› beta")
}

func TestCloneCommandRegistersProject(t *testing.T) {
	env := newTestEnv()
	env.scanner.Projects = []models.DetectedProject{
		{
			Name: "app", Path: "/workspace/app",
			Services: []models.DetectedService{
				{Name: "web", Category: "frontend", Stack: "react", Path: "/workspace/app"},
			},
		},
	}

	out, err := runCommand(t, NewCloneCommand(env.deps),
		"https://github.com/user/app.git", "--dir", "/workspace")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Cloned and registered app")

	require.Len(t, env.git.CloneCalls, 1)
	require.Equal(t, "/workspace", env.git.CloneCalls[0].DestDir)
	require.Equal(t, 1, env.store.FolderCount("/workspace/app"))
}

func TestCloneCommandCapturesGitIdentity(t *testing.T) {
	env := newTestEnv()
	env.scanner.Projects = []models.DetectedProject{
		{
			Name: "app", Path: "/workspace/app",
			Services: []models.DetectedService{
				{Name: "web", Category: "frontend", Stack: "react", Path: "/workspace/app"},
			},
		},
	}

	_, err := runCommand(t, NewCloneCommand(env.deps),
		"https://github.com/user/app.git", "--dir", "/workspace")
	require.NoError(t, err)

	rows, err := env.store.GetProjectsWithServices(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "https://github.com/user/app.git", rows[0].GitRemote)
	require.Equal(t, "main", rows[0].GitBranch)

	// The branch and remote show up in the rendered list.
	out, err := runCommand(t, NewListCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "[main]")
	require.Contains(t, out, "https://github.com/user/app.git")
}

func TestScanCommandCapturesGitIdentity(t *testing.T) {
	env := newTestEnv()
	env.git.AddRepo("/workspace/alpha", git.MockRepo{
		RemoteURL: "git@github.com:user/alpha.git",
		Branch:    "develop",
	})
	env.scanner.Projects = []models.DetectedProject{
		{
			Name: "alpha", Path: "/workspace/alpha",
			Services: []models.DetectedService{
				{Name: "web", Category: "frontend", Stack: "react", Path: "/workspace/alpha"},
			},
		},
		{
			Name: "beta", Path: "/workspace/beta",
			Services: []models.DetectedService{
				{Name: "api", Category: "backend", Stack: "go", Path: "/workspace/beta"},
			},
		},
	}

	_, err := runCommand(t, NewScanCommand(env.deps), "/workspace")
	require.NoError(t, err)

	rows, err := env.store.GetProjectsWithServices(context.Background())
	require.NoError(t, err)
	byName := make(map[string]store.ProjectWithServices, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}

	require.Equal(t, "git@github.com:user/alpha.git", byName["alpha"].GitRemote)
	require.Equal(t, "develop", byName["alpha"].GitBranch)

	// Folders without a repository stay blank.
	require.Empty(t, byName["beta"].GitRemote)
	require.Empty(t, byName["beta"].GitBranch)
}

func TestCloneCommandWithoutDestination(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewCloneCommand(env.deps), "https://github.com/user/app.git")
	require.ErrorContains(t, err, "no destination")
}

func TestReposCommand(t *testing.T) {
	env := newTestEnv()
	env.github.AddRepository(&github.Repository{
		FullName: "user/warden", Language: "Go", Description: "project dashboard",
	})

	out, err := runCommand(t, NewReposCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "user/warden")
	require.Contains(t, out, "public")
}

func TestReposCommandWithoutToken(t *testing.T) {
	env := newTestEnv()
	env.deps.GitHub = nil

	_, err := runCommand(t, NewReposCommand(env.deps))
	require.ErrorContains(t, err, "GITHUB_TOKEN")
}

func TestScaffoldCommandWithFlags(t *testing.T) {
	env := newTestEnv()

	out, err := runCommand(t, NewScaffoldCommand(env.deps),
		"--template", "vite-react", "--name", "dashboard", "--folder", "/workspace")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Scaffolded dashboard from Vite + React")

	require.Len(t, env.runner.RunCalls, 1)
	require.Equal(t, "/workspace", env.runner.RunCalls[0].WorkingDir)
	require.Contains(t, env.runner.RunCalls[0].Command, "dashboard")

	require.Equal(t, 1, env.store.FolderCount("/workspace/dashboard"))
}

func TestScaffoldCommandFailedRunDoesNotRegister(t *testing.T) {
	env := newTestEnv()
	env.runner.RunError = context.DeadlineExceeded

	_, err := runCommand(t, NewScaffoldCommand(env.deps),
		"--template", "vite-react", "--name", "dashboard", "--folder", "/workspace")
	require.Error(t, err)
	require.Equal(t, 0, env.store.ProjectCount())
}

func TestScaffoldCommandUnknownTemplate(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewScaffoldCommand(env.deps), "--template", "nope",
		"--name", "x", "--folder", "/workspace")
	require.ErrorContains(t, err, "not found")
}

func TestSettingsGetAndSet(t *testing.T) {
	env := newTestEnv()

	out, err := runCommand(t, NewSettingsCommand(env.deps), "set", "workspace_path", "/workspace")
	require.NoError(t, err)
	require.Contains(t, out, "✓ workspace_path = /workspace")

	out, err = runCommand(t, NewSettingsCommand(env.deps), "get", "workspace_path")
	require.NoError(t, err)
	require.Contains(t, out, "/workspace")

	out, err = runCommand(t, NewSettingsCommand(env.deps), "get")
	require.NoError(t, err)
	require.Contains(t, out, "default_ide = zed")
	require.Contains(t, out, "scan_depth = 2")
}

func TestSettingsSetDefaultIDEUpdatesCommand(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewSettingsCommand(env.deps), "set", "default_ide", "vscode")
	require.NoError(t, err)

	out, err := runCommand(t, NewSettingsCommand(env.deps), "get", "ide_command")
	require.NoError(t, err)
	require.Contains(t, out, "code")
}

func TestSettingsSetUnknownKey(t *testing.T) {
	env := newTestEnv()

	_, err := runCommand(t, NewSettingsCommand(env.deps), "set", "nope", "x")
	require.ErrorContains(t, err, "unknown setting")
}

func TestRootCommandReturnsErrorsWithoutPrinting(t *testing.T) {
	env := newTestEnv()

	// The caller prints the error exactly once; cobra must stay quiet.
	out, err := runCommand(t, NewRootCommand(env.deps), "remove", "ghost")
	require.ErrorContains(t, err, "not found")
	require.NotContains(t, out, "Error:")
}

func TestRootCommandDefaultsToList(t *testing.T) {
	env := newTestEnv()
	env.seedProject(t, "p1", "alpha", "/workspace/alpha")

	out, err := runCommand(t, NewRootCommand(env.deps))
	require.NoError(t, err)
	require.Contains(t, out, "alpha")
}
