package scanner

import (
	"github.com/yuuhLKT/warden/internal/models"
)

// detectedCommands carries the per-lifecycle shell commands detection
// worked out for a service. Empty string means none was found.
type detectedCommands struct {
	dev     string
	build   string
	start   string
	install string
}

func detectCommands(framework models.Framework, pm models.PackageManager, pkg *packageJSON, cargo *cargoManifest) detectedCommands {
	commands := detectedCommands{install: pm.InstallCommand()}

	switch framework {
	case models.FrameworkTauri:
		commands.dev = "cargo tauri dev"
		commands.build = "cargo tauri build"
		return commands

	case models.FrameworkActixWeb, models.FrameworkAxum, models.FrameworkRocket, models.FrameworkRust:
		commands.dev = "cargo run"
		commands.build = "cargo build --release"
		return commands
	}

	// A package.json with scripts wins over framework conventions.
	if pkg != nil {
		prefix := pm.RunPrefix()
		if prefix == "" {
			prefix = models.PMNpm.RunPrefix()
		}
		if _, ok := pkg.Scripts["dev"]; ok {
			commands.dev = prefix + " dev"
		}
		if _, ok := pkg.Scripts["build"]; ok {
			commands.build = prefix + " build"
		}
		if _, ok := pkg.Scripts["start"]; ok {
			commands.start = prefix + " start"
		}
		if commands.dev == "" && commands.start != "" {
			commands.dev = commands.start
		}
		return commands
	}

	switch framework {
	case models.FrameworkDjango:
		commands.dev = "python manage.py runserver"
		commands.start = "python manage.py runserver"
	case models.FrameworkFlask:
		commands.dev = "flask run"
		commands.start = "flask run"
	case models.FrameworkFastAPI:
		commands.dev = "uvicorn main:app --reload"
		commands.start = "uvicorn main:app"
	case models.FrameworkPython:
		commands.dev = "python main.py"
		commands.start = "python main.py"

	case models.FrameworkLaravel:
		commands.dev = "php artisan serve"
		commands.start = "php artisan serve"
	case models.FrameworkSymfony:
		commands.dev = "symfony serve"
		commands.start = "symfony serve"
	case models.FrameworkPHP:
		commands.dev = "php -S localhost:8000"

	case models.FrameworkRails:
		commands.dev = "rails server"
		commands.start = "rails server"
	case models.FrameworkSinatra:
		commands.dev = "ruby app.rb"
		commands.start = "ruby app.rb"
	case models.FrameworkRuby:
		commands.dev = "ruby main.rb"

	case models.FrameworkGin, models.FrameworkEcho, models.FrameworkFiber,
		models.FrameworkChi, models.FrameworkGo:
		commands.dev = "go run ."
		commands.build = "go build -o app ."
		commands.start = "./app"
	}

	return commands
}
