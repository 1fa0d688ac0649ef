package scanner

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
)

// Directories never worth descending into.
var ignoredDirNames = map[string]struct{}{
	"node_modules": {},
	"target":       {},
	"vendor":       {},
	"__pycache__":  {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
	".next":        {},
	".nuxt":        {},
}

// FSScanner implements Scanner against a real or mocked filesystem.
type FSScanner struct {
	fs filesystem.FileSystem
}

var _ Scanner = (*FSScanner)(nil)

// New creates a filesystem-backed Scanner.
func New(fs filesystem.FileSystem) *FSScanner {
	return &FSScanner{fs: fs}
}

// ScanWorkspace looks at every first-level folder under root and scans
// the ones that carry a project manifest.
func (s *FSScanner) ScanWorkspace(ctx context.Context, root string, maxDepth int) ([]models.DetectedProject, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace %s: %w", root, err)
	}

	var projects []models.DetectedProject
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !entry.IsDir() || skipDirName(entry.Name()) {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if !isProjectDir(s.fs, path) {
			continue
		}

		project, err := s.ScanProject(ctx, path, maxDepth)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// ScanProject builds the full detection record for one project folder.
func (s *FSScanner) ScanProject(ctx context.Context, path string, maxDepth int) (models.DetectedProject, error) {
	if err := ctx.Err(); err != nil {
		return models.DetectedProject{}, err
	}

	project := models.DetectedProject{
		Name:               filepath.Base(path),
		Path:               path,
		MonorepoTool:       models.MonorepoNone,
		RootPackageManager: detectPackageManager(s.fs, path),
		HasDocker:          hasDocker(s.fs, path),
		HasDockerCompose:   hasDockerCompose(s.fs, path),
	}

	// Tauri projects are one frontend plus the src-tauri shell; the
	// generic path would misread the shell as a separate Rust service.
	if s.isTauriProject(path) {
		project.IsTauri = true
		project.Services = s.scanTauriProject(path)
		return project, nil
	}

	if info := detectMonorepo(s.fs, path); info != nil {
		project.IsMonorepo = true
		project.MonorepoTool = info.tool
		project.Workspaces = info.workspacePaths

		for _, workspacePath := range info.workspacePaths {
			if svc, ok := s.scanSingleService(workspacePath, path); ok {
				project.Services = append(project.Services, svc)
			}
		}
	} else if svc, ok := s.scanSingleService(path, path); ok {
		project.Services = append(project.Services, svc)
	}

	if project.HasDockerCompose {
		for _, dockerSvc := range detectDockerServices(s.fs, path) {
			if !isDuplicateService(project.Services, dockerSvc) {
				project.Services = append(project.Services, dockerSvc)
			}
		}
	}

	if maxDepth > 1 && !project.IsMonorepo {
		nested, err := s.nestedProjectDirs(path, maxDepth)
		if err != nil {
			return models.DetectedProject{}, err
		}
		for _, nestedPath := range nested {
			if nestedPath == path {
				continue
			}
			svc, ok := s.scanSingleService(nestedPath, path)
			if !ok {
				continue
			}
			if !hasServiceAtPath(project.Services, svc.Path) {
				project.Services = append(project.Services, svc)
			}
		}
	}

	return project, nil
}

func (s *FSScanner) isTauriProject(path string) bool {
	return s.fs.Exists(filepath.Join(path, "src-tauri")) ||
		s.fs.Exists(filepath.Join(path, "tauri.conf.json"))
}

func (s *FSScanner) scanTauriProject(path string) []models.DetectedService {
	pm := detectPackageManager(s.fs, path)
	pkg, _ := readPackageJSON(s.fs, path)

	frontend := models.DetectedService{
		Name:           "frontend",
		Path:           path,
		RelativePath:   ".",
		Category:       categoryFrontend,
		PackageManager: pm,
		Framework:      models.FrameworkVite,
		InstallCommand: pm.InstallCommand(),
	}

	if pkg != nil {
		switch {
		case pkg.hasDependency("react"):
			frontend.Framework = models.FrameworkReact
		case pkg.hasDependency("vue"):
			frontend.Framework = models.FrameworkVue
		case pkg.hasDependency("svelte"):
			frontend.Framework = models.FrameworkSvelte
		case pkg.hasDependency("solid-js"):
			frontend.Framework = models.FrameworkSolid
		}
	}

	frontend.Stack = string(frontend.Framework.ToStack())
	frontend.Port = frontend.Framework.DefaultPort()

	if conf, err := readTauriConf(s.fs, path); err == nil {
		if port := conf.devPort(); port != 0 {
			frontend.Port = port
		}
		frontend.DevCommand = conf.Build.BeforeDevCmd
		frontend.BuildCommand = conf.Build.BeforeBuildCmd
	}
	if frontend.DevCommand == "" {
		frontend.DevCommand = pm.RunPrefix() + " dev"
	}
	if frontend.BuildCommand == "" {
		frontend.BuildCommand = pm.RunPrefix() + " build"
	}

	backend := models.DetectedService{
		Name:           "tauri",
		Path:           filepath.Join(path, "src-tauri"),
		RelativePath:   "src-tauri",
		Category:       categoryDesktop,
		Stack:          "rust",
		Framework:      models.FrameworkTauri,
		PackageManager: models.PMCargo,
		DevCommand:     "cargo tauri dev",
		BuildCommand:   "cargo tauri build",
		InstallCommand: "cargo build",
	}

	return []models.DetectedService{frontend, backend}
}

// scanSingleService inspects one directory as a runnable unit.
func (s *FSScanner) scanSingleService(path, rootPath string) (models.DetectedService, bool) {
	info, err := s.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return models.DetectedService{}, false
	}

	rel, err := filepath.Rel(rootPath, path)
	if err != nil || rel == "" {
		rel = "."
	}

	pkg, _ := readPackageJSON(s.fs, path)
	cargo, _ := readCargoManifest(s.fs, path)

	pm := detectPackageManager(s.fs, path)
	framework := detectFramework(s.fs, path, pkg, cargo)
	commands := detectCommands(framework, pm, pkg, cargo)

	return models.DetectedService{
		Name:           filepath.Base(path),
		Path:           path,
		RelativePath:   rel,
		Category:       detectServiceCategory(s.fs, path, framework, pkg),
		Stack:          string(framework.ToStack()),
		Framework:      framework,
		PackageManager: pm,
		Port:           detectPort(s.fs, path, framework, pkg),
		DevCommand:     commands.dev,
		BuildCommand:   commands.build,
		StartCommand:   commands.start,
		InstallCommand: commands.install,
	}, true
}

// nestedProjectDirs finds project folders below path up to maxDepth,
// honoring the root .gitignore.
func (s *FSScanner) nestedProjectDirs(root string, maxDepth int) ([]string, error) {
	ignore, err := s.loadGitIgnore(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	var walk func(dir string, depth int) error
	walk = func(dir string, depth int) error {
		if depth <= 0 {
			return nil
		}

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return nil // unreadable subtree, skip
		}

		for _, entry := range entries {
			if !entry.IsDir() || skipDirName(entry.Name()) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if ignore != nil {
				rel, relErr := filepath.Rel(root, path)
				if relErr == nil {
					rel = filepath.ToSlash(rel)
					if match := ignore.Relative(rel, true); match != nil && match.Ignore() {
						continue
					}
				}
			}

			if isProjectDir(s.fs, path) {
				dirs = append(dirs, path)
			}
			if err := walk(path, depth-1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, maxDepth); err != nil {
		return nil, err
	}
	return dirs, nil
}

func (s *FSScanner) loadGitIgnore(root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !s.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := s.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}

func skipDirName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := ignoredDirNames[name]
	return ok
}

func isDuplicateService(services []models.DetectedService, svc models.DetectedService) bool {
	for _, existing := range services {
		if existing.RelativePath == svc.RelativePath {
			return true
		}
		if svc.DockerServiceName != "" && existing.DockerServiceName == svc.DockerServiceName {
			return true
		}
	}
	return false
}

func hasServiceAtPath(services []models.DetectedService, path string) bool {
	for _, existing := range services {
		if existing.Path == path {
			return true
		}
	}
	return false
}
