package scanner

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/models"
)

var (
	configPortPattern  = regexp.MustCompile(`port\s*:\s*['"]?(\d+)['"]?`)
	angularPortPattern = regexp.MustCompile(`"port"\s*:\s*(\d+)`)
	pythonPortPattern  = regexp.MustCompile(`port\s*=\s*(\d+)`)
	envPortPattern     = regexp.MustCompile(`^(?:VITE_|DEV_|SERVER_|APP_)?PORT\s*=\s*(\d+)`)
)

// detectPort returns the dev-server port in preference order: framework
// config file, package.json scripts, env files, framework default.
// Returns 0 when nothing is found.
func detectPort(fs filesystem.FileSystem, dir string, framework models.Framework, pkg *packageJSON) int {
	if port := portFromConfig(fs, dir, framework); port != 0 {
		return port
	}

	if pkg != nil {
		if port := pkg.portFromScripts(); port != 0 {
			return port
		}
	}

	if port := portFromEnv(fs, dir); port != 0 {
		return port
	}

	return framework.DefaultPort()
}

func portFromConfig(fs filesystem.FileSystem, dir string, framework models.Framework) int {
	switch framework {
	case models.FrameworkTauri:
		if conf, err := readTauriConf(fs, dir); err == nil {
			return conf.devPort()
		}

	case models.FrameworkVite, models.FrameworkReact, models.FrameworkVue,
		models.FrameworkSvelte, models.FrameworkSolid:
		return portFromFiles(fs, dir, configPortPattern,
			"vite.config.ts", "vite.config.js", "vite.config.mjs")

	case models.FrameworkAngular:
		return portFromFiles(fs, dir, angularPortPattern, "angular.json")

	case models.FrameworkNuxtJS:
		return portFromFiles(fs, dir, configPortPattern, "nuxt.config.ts", "nuxt.config.js")

	case models.FrameworkFlask:
		return portFromFiles(fs, dir, pythonPortPattern, "app.py", "main.py", "run.py")
	}
	return 0
}

func portFromFiles(fs filesystem.FileSystem, dir string, pattern *regexp.Regexp, names ...string) int {
	for _, name := range names {
		data, err := fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if m := pattern.FindStringSubmatch(string(data)); m != nil {
			if port, err := strconv.Atoi(m[1]); err == nil {
				return port
			}
		}
	}
	return 0
}

func portFromEnv(fs filesystem.FileSystem, dir string) int {
	envFiles := []string{".env", ".env.local", ".env.development", ".env.development.local"}

	for _, name := range envFiles {
		data, err := fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			m := envPortPattern.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			// Privileged ports in env files are almost always production
			// values, not the local dev server.
			if port, err := strconv.Atoi(m[1]); err == nil && port >= 1024 {
				return port
			}
		}
	}
	return 0
}
