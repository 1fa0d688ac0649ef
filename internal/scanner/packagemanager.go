package scanner

import (
	"path/filepath"
	"strings"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
)

// detectPackageManager identifies the dependency tool from lockfiles and
// manifests, most specific first.
func detectPackageManager(fs filesystem.FileSystem, dir string) models.PackageManager {
	exists := func(name string) bool { return fs.Exists(filepath.Join(dir, name)) }

	switch {
	case exists("bun.lock") || exists("bun.lockb"):
		return models.PMBun
	case exists("pnpm-lock.yaml"):
		return models.PMPnpm
	case exists("yarn.lock"):
		return models.PMYarn
	case exists("package-lock.json"):
		return models.PMNpm
	case exists("deno.json") || exists("deno.jsonc"):
		return models.PMDeno
	case exists("Cargo.lock") || exists("Cargo.toml"):
		return models.PMCargo
	}

	if exists("poetry.lock") {
		return models.PMPoetry
	}
	if exists("pyproject.toml") {
		if data, err := fs.ReadFile(filepath.Join(dir, "pyproject.toml")); err == nil &&
			strings.Contains(string(data), "[tool.poetry]") {
			return models.PMPoetry
		}
		return models.PMPip
	}
	if exists("requirements.txt") || exists("Pipfile") {
		return models.PMPip
	}

	switch {
	case exists("composer.lock") || exists("composer.json"):
		return models.PMComposer
	case exists("Gemfile.lock") || exists("Gemfile"):
		return models.PMBundler
	case exists("go.sum") || exists("go.mod"):
		return models.PMGoMod
	case exists("pom.xml"):
		return models.PMMaven
	case exists("build.gradle") || exists("build.gradle.kts") || exists("settings.gradle") || exists("settings.gradle.kts"):
		return models.PMGradle
	case exists("mix.lock") || exists("mix.exs"):
		return models.PMMix
	}

	// package.json without any lockfile defaults to npm.
	if exists("package.json") {
		return models.PMNpm
	}
	return models.PMUnknown
}
