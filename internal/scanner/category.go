package scanner

import (
	"path/filepath"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
)

// Category strings cross the detection boundary loosely typed; the
// domain coercers narrow them later.
const (
	categoryFrontend  = "frontend"
	categoryBackend   = "backend"
	categoryFullstack = "fullstack"
	categoryDesktop   = "desktop"
	categoryMobile    = "mobile"
	categoryWorker    = "worker"
	categoryDocker    = "docker"
	categoryUnknown   = "unknown"
)

func detectServiceCategory(fs filesystem.FileSystem, dir string, framework models.Framework, pkg *packageJSON) string {
	switch framework {
	case models.FrameworkTauri, models.FrameworkElectron:
		return categoryDesktop

	case models.FrameworkReactNative, models.FrameworkExpo:
		return categoryMobile

	case models.FrameworkExpress, models.FrameworkFastify, models.FrameworkKoa,
		models.FrameworkNestJS, models.FrameworkAdonisJS, models.FrameworkStrapi,
		models.FrameworkDjango, models.FrameworkFlask, models.FrameworkFastAPI,
		models.FrameworkLaravel, models.FrameworkSymfony,
		models.FrameworkRails, models.FrameworkSinatra,
		models.FrameworkGin, models.FrameworkEcho, models.FrameworkFiber, models.FrameworkChi,
		models.FrameworkActixWeb, models.FrameworkAxum, models.FrameworkRocket:
		return categoryBackend

	case models.FrameworkNextJS, models.FrameworkNuxtJS, models.FrameworkRemix, models.FrameworkSvelteKit:
		if hasAPIRoutes(fs, dir) {
			return categoryFullstack
		}
		return categoryFrontend

	case models.FrameworkReact, models.FrameworkVue, models.FrameworkAngular,
		models.FrameworkSvelte, models.FrameworkSolid, models.FrameworkPreact,
		models.FrameworkQwik, models.FrameworkAstro, models.FrameworkGatsby:
		return categoryFrontend

	case models.FrameworkUnknown:
		return categoryUnknown
	}

	// Build tools and generic runtimes need a look at the project shape.
	return categoryFromStructure(fs, dir)
}

var frontendIndicators = []string{
	"src/components", "src/pages", "src/views",
	"src/App.tsx", "src/App.vue", "src/App.jsx",
	"src/main.tsx", "src/main.ts",
	"public/index.html", "index.html",
}

var backendIndicators = []string{
	"src/controllers", "src/routes", "src/api", "src/services",
	"src/repositories", "src/models", "src/handlers", "src/middleware",
	"app/controllers", "app/models", "config/routes.rb",
}

var serverLanguageMarkers = []string{
	"go.mod", "Cargo.toml", "requirements.txt", "composer.json",
	"Gemfile", "pom.xml", "build.gradle", "mix.exs",
}

func categoryFromStructure(fs filesystem.FileSystem, dir string) string {
	hasFrontend := anyExists(fs, dir, frontendIndicators)
	hasBackend := anyExists(fs, dir, backendIndicators)

	switch {
	case hasFrontend && hasBackend:
		return categoryFullstack
	case hasFrontend:
		return categoryFrontend
	case hasBackend:
		return categoryBackend
	}

	if anyExists(fs, dir, serverLanguageMarkers) {
		return categoryBackend
	}
	return categoryUnknown
}

func hasAPIRoutes(fs filesystem.FileSystem, dir string) bool {
	routes := []string{
		"pages/api", "app/api", // Next.js
		"server/api", "server/routes", // Nuxt
	}
	return anyExists(fs, dir, routes)
}

func anyExists(fs filesystem.FileSystem, dir string, names []string) bool {
	for _, name := range names {
		if fs.Exists(filepath.Join(dir, filepath.FromSlash(name))) {
			return true
		}
	}
	return false
}
