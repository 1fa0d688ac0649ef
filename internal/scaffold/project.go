package scaffold

import (
	"path/filepath"

	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/registry"
)

// ProjectInput is what the user provides when scaffolding.
type ProjectInput struct {
	Name   string
	Folder string
	URL    string
	Port   int
}

// BuildProjectForm derives the registration form for a freshly scaffolded
// project: one service shaped by the template, rooted at folder/name.
func BuildProjectForm(tmpl Template, input ProjectInput) registry.ProjectForm {
	projectPath := filepath.Join(input.Folder, input.Name)

	port := input.Port
	if port == 0 {
		port = tmpl.DefaultPort
	}
	if port == 0 {
		port = models.DefaultPort
	}

	return registry.ProjectForm{
		Name:   input.Name,
		Folder: projectPath,
		Services: []registry.ServiceForm{
			{
				Name:    tmpl.Name,
				Type:    models.CategoryToServiceType(tmpl.Category),
				Stack:   stackForTemplate(tmpl),
				Path:    projectPath,
				URL:     input.URL,
				Port:    port,
				Command: string(tmpl.PackageManager) + " run dev",
			},
		},
	}
}

// stackForTemplate maps the template's language onto a stack, letting
// tags pick the specific framework where the language alone is ambiguous.
func stackForTemplate(tmpl Template) models.Stack {
	switch tmpl.Language {
	case models.LangTypeScript:
		switch {
		case tmpl.HasTag("nextjs"):
			return models.StackNext
		case tmpl.HasTag("react"):
			return models.StackReact
		case tmpl.HasTag("vue"):
			return models.StackVue
		case tmpl.HasTag("svelte"):
			return models.StackSvelte
		case tmpl.HasTag("nestjs"):
			return models.StackNestJS
		default:
			return models.StackNode
		}
	case models.LangJavaScript:
		return models.StackNode
	case models.LangPython:
		switch {
		case tmpl.HasTag("django"):
			return models.StackDjango
		case tmpl.HasTag("flask"):
			return models.StackFlask
		default:
			return models.StackOther
		}
	case models.LangPHP:
		return models.StackLaravel
	case models.LangRust:
		return models.StackRust
	case models.LangGo:
		return models.StackGo
	case models.LangJava, models.LangKotlin:
		return models.StackNestJS
	case models.LangRuby:
		return models.StackRails
	default:
		return models.StackOther
	}
}
