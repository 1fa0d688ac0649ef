package scanner

import (
	"path/filepath"
	"strings"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
	"gopkg.in/yaml.v3"
)

// monorepoInfo describes a detected multi-service repository.
type monorepoInfo struct {
	tool           models.MonorepoTool
	workspacePaths []string
}

// detectMonorepo checks the tool-specific markers first, then generic
// npm/yarn workspaces from package.json. Returns nil when the folder is
// a single-service project.
func detectMonorepo(fs filesystem.FileSystem, dir string) *monorepoInfo {
	if fs.Exists(filepath.Join(dir, "turbo.json")) {
		if info := detectNpmWorkspaces(fs, dir); info != nil {
			info.tool = models.MonorepoTurborepo
			return info
		}
	}

	if fs.Exists(filepath.Join(dir, "nx.json")) {
		return detectNxWorkspaces(fs, dir)
	}

	if fs.Exists(filepath.Join(dir, "pnpm-workspace.yaml")) {
		return detectPnpmWorkspaces(fs, dir)
	}

	if fs.Exists(filepath.Join(dir, "Cargo.toml")) {
		if info := detectCargoWorkspace(fs, dir); info != nil {
			return info
		}
	}

	return detectNpmWorkspaces(fs, dir)
}

func detectNpmWorkspaces(fs filesystem.FileSystem, dir string) *monorepoInfo {
	pkg, err := readPackageJSON(fs, dir)
	if err != nil {
		return nil
	}

	patterns := pkg.workspacePatterns()
	if len(patterns) == 0 {
		return nil
	}

	tool := models.MonorepoNpmWorkspaces
	if fs.Exists(filepath.Join(dir, "yarn.lock")) {
		tool = models.MonorepoYarnWorkspaces
	}

	return &monorepoInfo{
		tool:           tool,
		workspacePaths: resolveWorkspacePatterns(fs, dir, patterns),
	}
}

func detectPnpmWorkspaces(fs filesystem.FileSystem, dir string) *monorepoInfo {
	data, err := fs.ReadFile(filepath.Join(dir, "pnpm-workspace.yaml"))
	if err != nil {
		return nil
	}

	var manifest struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil
	}

	return &monorepoInfo{
		tool:           models.MonorepoPnpmWorkspaces,
		workspacePaths: resolveWorkspacePatterns(fs, dir, manifest.Packages),
	}
}

// detectNxWorkspaces lists the conventional Nx project directories
// instead of resolving patterns; nx.json does not carry globs.
func detectNxWorkspaces(fs filesystem.FileSystem, dir string) *monorepoInfo {
	var paths []string
	for _, sub := range []string{"apps", "libs", "packages"} {
		entries, err := fs.ReadDir(filepath.Join(dir, sub))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			candidate := filepath.Join(dir, sub, entry.Name())
			if fs.Exists(filepath.Join(candidate, "package.json")) ||
				fs.Exists(filepath.Join(candidate, "project.json")) {
				paths = append(paths, candidate)
			}
		}
	}

	return &monorepoInfo{tool: models.MonorepoNx, workspacePaths: paths}
}

func detectCargoWorkspace(fs filesystem.FileSystem, dir string) *monorepoInfo {
	manifest, err := readCargoManifest(fs, dir)
	if err != nil || len(manifest.Workspace.Members) == 0 {
		return nil
	}

	return &monorepoInfo{
		tool:           models.MonorepoCargoWorkspace,
		workspacePaths: resolveWorkspacePatterns(fs, dir, manifest.Workspace.Members),
	}
}

// resolveWorkspacePatterns expands glob patterns to existing project
// directories. Negation patterns are skipped.
func resolveWorkspacePatterns(fs filesystem.FileSystem, dir string, patterns []string) []string {
	var paths []string
	seen := make(map[string]struct{})

	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "!") {
			continue
		}

		matches, err := fs.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
		if err != nil {
			continue
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			if !isProjectDir(fs, match) {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}

	return paths
}

var projectManifests = []string{
	"package.json", "Cargo.toml", "composer.json", "requirements.txt",
	"pyproject.toml", "Gemfile", "go.mod", "pom.xml", "build.gradle", "mix.exs",
}

// isProjectDir reports whether the directory carries any recognized
// project manifest.
func isProjectDir(fs filesystem.FileSystem, dir string) bool {
	info, err := fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	for _, manifest := range projectManifests {
		if fs.Exists(filepath.Join(dir, manifest)) {
			return true
		}
	}
	return false
}
