package scanner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
	"golang.org/x/mod/modfile"
)

// Framework detection accumulates evidence per candidate instead of
// using a first-match chain; the candidate with the highest score wins.
//
// Weight guide:
//   10  exclusive marker, only this ecosystem produces it
//        (manage.py, go.mod, Cargo.toml, artisan)
//    7  strong marker, almost always this ecosystem
//    5  good marker, occasionally shared
//    3  weak marker, very common elsewhere (bare package.json)

type candidate struct {
	framework models.Framework
	score     int
}

func detectFramework(fs filesystem.FileSystem, dir string, pkg *packageJSON, cargo *cargoManifest) models.Framework {
	// src-tauri/ only exists in Tauri projects.
	if fs.Exists(filepath.Join(dir, "src-tauri")) ||
		fs.Exists(filepath.Join(dir, "tauri.conf.json")) ||
		fs.Exists(filepath.Join(dir, "src-tauri", "tauri.conf.json")) {
		return models.FrameworkTauri
	}

	// Specific frameworks go first so the stable sort resolves score
	// ties in their favor over the generic runtime candidates.
	var candidates []candidate
	if pkg != nil {
		candidates = scoreNodeFrameworks(fs, dir, pkg)
	}
	candidates = append(candidates,
		scoreRust(fs, dir, cargo),
		scorePHP(fs, dir),
		scorePython(fs, dir),
		scoreRuby(fs, dir),
		scoreGo(fs, dir),
		scoreDeno(fs, dir),
		scoreNode(fs, dir),
	)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > 0 && candidates[0].score > 0 {
		return candidates[0].framework
	}
	return models.FrameworkUnknown
}

func scoreRust(fs filesystem.FileSystem, dir string, cargo *cargoManifest) candidate {
	if !fs.Exists(filepath.Join(dir, "Cargo.toml")) {
		return candidate{models.FrameworkRust, 0}
	}

	lockBonus := 0
	if fs.Exists(filepath.Join(dir, "Cargo.lock")) {
		lockBonus = 3
	}

	if cargo != nil {
		switch {
		case cargo.hasDependency("actix-web"):
			return candidate{models.FrameworkActixWeb, 17 + lockBonus}
		case cargo.hasDependency("axum"):
			return candidate{models.FrameworkAxum, 17 + lockBonus}
		case cargo.hasDependency("rocket"):
			return candidate{models.FrameworkRocket, 17 + lockBonus}
		}
	}
	return candidate{models.FrameworkRust, 10 + lockBonus}
}

func scorePHP(fs filesystem.FileSystem, dir string) candidate {
	// artisan is Laravel-exclusive.
	if fs.Exists(filepath.Join(dir, "artisan")) {
		bonus := 0
		if fs.Exists(filepath.Join(dir, "composer.json")) {
			bonus += 7
		}
		if fs.Exists(filepath.Join(dir, "composer.lock")) {
			bonus += 5
		}
		return candidate{models.FrameworkLaravel, 10 + bonus}
	}

	if fs.Exists(filepath.Join(dir, "symfony.lock")) {
		return candidate{models.FrameworkSymfony, 15}
	}
	if fs.Exists(filepath.Join(dir, "bin", "console")) {
		return candidate{models.FrameworkSymfony, 10}
	}

	if data, err := fs.ReadFile(filepath.Join(dir, "composer.json")); err == nil {
		low := strings.ToLower(string(data))
		lockBonus := 0
		if fs.Exists(filepath.Join(dir, "composer.lock")) {
			lockBonus = 5
		}

		framework := models.FrameworkPHP
		switch {
		case strings.Contains(low, "laravel/framework"):
			framework = models.FrameworkLaravel
		case strings.Contains(low, "symfony/framework-bundle"):
			framework = models.FrameworkSymfony
		}
		return candidate{framework, 7 + lockBonus}
	}

	if fs.Exists(filepath.Join(dir, "composer.lock")) {
		return candidate{models.FrameworkPHP, 7}
	}
	return candidate{models.FrameworkPHP, 0}
}

func scorePython(fs filesystem.FileSystem, dir string) candidate {
	// manage.py is Django-exclusive.
	if fs.Exists(filepath.Join(dir, "manage.py")) {
		return candidate{models.FrameworkDjango, 13}
	}

	for _, manifest := range []string{"requirements.txt", "pyproject.toml"} {
		data, err := fs.ReadFile(filepath.Join(dir, manifest))
		if err != nil {
			continue
		}
		low := strings.ToLower(string(data))

		framework := models.FrameworkPython
		switch {
		case strings.Contains(low, "django"):
			framework = models.FrameworkDjango
		case strings.Contains(low, "flask"):
			framework = models.FrameworkFlask
		case strings.Contains(low, "fastapi"):
			framework = models.FrameworkFastAPI
		}
		return candidate{framework, 10}
	}

	for _, marker := range []string{"app.py", "main.py", "setup.py", "Pipfile"} {
		if fs.Exists(filepath.Join(dir, marker)) {
			return candidate{models.FrameworkPython, 7}
		}
	}
	return candidate{models.FrameworkPython, 0}
}

func scoreRuby(fs filesystem.FileSystem, dir string) candidate {
	if fs.Exists(filepath.Join(dir, "config", "application.rb")) || fs.Exists(filepath.Join(dir, "bin", "rails")) {
		return candidate{models.FrameworkRails, 15}
	}

	if data, err := fs.ReadFile(filepath.Join(dir, "Gemfile")); err == nil {
		low := strings.ToLower(string(data))
		lockBonus := 0
		if fs.Exists(filepath.Join(dir, "Gemfile.lock")) {
			lockBonus = 3
		}

		framework := models.FrameworkRuby
		switch {
		case strings.Contains(low, "rails"):
			framework = models.FrameworkRails
		case strings.Contains(low, "sinatra"):
			framework = models.FrameworkSinatra
		}
		return candidate{framework, 10 + lockBonus}
	}

	if fs.Exists(filepath.Join(dir, "Gemfile.lock")) {
		return candidate{models.FrameworkRuby, 7}
	}
	return candidate{models.FrameworkRuby, 0}
}

func scoreGo(fs filesystem.FileSystem, dir string) candidate {
	goModPath := filepath.Join(dir, "go.mod")
	if data, err := fs.ReadFile(goModPath); err == nil {
		sumBonus := 0
		if fs.Exists(filepath.Join(dir, "go.sum")) {
			sumBonus = 3
		}

		modFile, err := modfile.Parse(goModPath, data, nil)
		if err != nil {
			return candidate{models.FrameworkGo, 10 + sumBonus}
		}

		framework := models.FrameworkGo
		for _, req := range modFile.Require {
			switch {
			case req.Mod.Path == "github.com/gin-gonic/gin":
				framework = models.FrameworkGin
			case strings.HasPrefix(req.Mod.Path, "github.com/labstack/echo"):
				framework = models.FrameworkEcho
			case strings.HasPrefix(req.Mod.Path, "github.com/gofiber/fiber"):
				framework = models.FrameworkFiber
			case strings.HasPrefix(req.Mod.Path, "github.com/go-chi/chi"):
				framework = models.FrameworkChi
			}
			if framework != models.FrameworkGo {
				break
			}
		}
		return candidate{framework, 10 + sumBonus}
	}

	if fs.Exists(filepath.Join(dir, "go.sum")) {
		return candidate{models.FrameworkGo, 7}
	}
	return candidate{models.FrameworkGo, 0}
}

func scoreDeno(fs filesystem.FileSystem, dir string) candidate {
	if fs.Exists(filepath.Join(dir, "deno.json")) || fs.Exists(filepath.Join(dir, "deno.jsonc")) {
		return candidate{models.FrameworkDeno, 10}
	}
	return candidate{models.FrameworkDeno, 0}
}

// scoreNode covers generic Node presence. Kept low so the specific
// framework candidates from scoreNodeFrameworks always outweigh it.
func scoreNode(fs filesystem.FileSystem, dir string) candidate {
	score := 0
	if fs.Exists(filepath.Join(dir, "package.json")) {
		score += 3
	}
	for _, lock := range []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lock", "bun.lockb"} {
		if fs.Exists(filepath.Join(dir, lock)) {
			score += 5
			break
		}
	}
	return candidate{models.FrameworkNode, score}
}

// scoreNodeFrameworks produces one candidate per JS framework found in
// package.json so they compete head-to-head with the other ecosystems.
func scoreNodeFrameworks(fs filesystem.FileSystem, dir string, pkg *packageJSON) []candidate {
	var out []candidate
	add := func(framework models.Framework, hit bool, score int) {
		if hit {
			out = append(out, candidate{framework, score})
		}
	}

	// Meta frameworks
	add(models.FrameworkNextJS, pkg.hasDependency("next"), 10)
	add(models.FrameworkNuxtJS, pkg.hasDependency("nuxt") || pkg.hasDependency("nuxt3"), 10)
	add(models.FrameworkRemix, pkg.hasDependency("@remix-run/react") || pkg.hasDependency("@remix-run/node"), 10)
	add(models.FrameworkAstro, pkg.hasDependency("astro"), 10)
	add(models.FrameworkGatsby, pkg.hasDependency("gatsby"), 10)
	add(models.FrameworkSvelteKit, pkg.hasDependency("@sveltejs/kit"), 10)

	// Desktop / mobile
	add(models.FrameworkElectron, pkg.hasDependency("electron") || pkg.hasDependency("electron-builder"), 10)
	add(models.FrameworkReactNative, pkg.hasDependency("react-native"), 10)
	add(models.FrameworkExpo, pkg.hasDependency("expo"), 10)

	// Backend Node
	add(models.FrameworkNestJS, pkg.hasDependency("@nestjs/core"), 10)
	add(models.FrameworkAdonisJS, pkg.hasDependency("@adonisjs/core"), 10)
	add(models.FrameworkStrapi, pkg.hasDependency("strapi") || pkg.hasDependency("@strapi/strapi"), 10)
	add(models.FrameworkFastify, pkg.hasDependency("fastify"), 9)
	add(models.FrameworkKoa, pkg.hasDependency("koa"), 9)
	add(models.FrameworkExpress, pkg.hasDependency("express"), 8)

	// Frontend
	add(models.FrameworkAngular, pkg.hasDependency("@angular/core"), 10)
	add(models.FrameworkVue, pkg.hasDependency("vue"), 9)
	add(models.FrameworkSvelte, pkg.hasDependency("svelte"), 9)
	add(models.FrameworkSolid, pkg.hasDependency("solid-js"), 9)
	add(models.FrameworkPreact, pkg.hasDependency("preact"), 9)
	add(models.FrameworkQwik, pkg.hasDependency("@builder.io/qwik"), 9)
	add(models.FrameworkReact, pkg.hasDependency("react") || pkg.hasDependency("react-dom"), 8)

	// Build tools score low; they usually sit next to a real framework.
	hasVite := pkg.hasDependency("vite") ||
		fs.Exists(filepath.Join(dir, "vite.config.ts")) ||
		fs.Exists(filepath.Join(dir, "vite.config.js"))
	add(models.FrameworkVite, hasVite, 5)
	add(models.FrameworkWebpack, pkg.hasDependency("webpack"), 5)

	add(models.FrameworkBun, fs.Exists(filepath.Join(dir, "bun.lock")) || fs.Exists(filepath.Join(dir, "bun.lockb")), 8)

	return out
}
