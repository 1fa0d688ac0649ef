package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yuuhLKT/warden/internal/models"
)

// urlPattern accepts "host.suffix" shapes like "my-app.test".
var urlPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+\.[a-zA-Z0-9-]+$`)

// FieldErrors maps a field path (e.g. "services[0].port") to a message.
// Validation failures stay local; no external call is made while any
// field is invalid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "invalid input"
	}

	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// ServiceForm is user-provided input for one service.
type ServiceForm struct {
	Name    string
	Type    models.ServiceType
	Stack   models.Stack
	Path    string
	URL     string
	Port    int
	Command string
}

// ProjectForm is user-provided input for a new project.
type ProjectForm struct {
	Name     string
	Folder   string
	Services []ServiceForm
}

// Validate checks the form the same way the interactive dialog does.
// Returns nil when everything passes, otherwise a FieldErrors value.
func (f *ProjectForm) Validate() error {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "project name is required"
	}
	if strings.TrimSpace(f.Folder) == "" {
		errs["folder"] = "project folder is required"
	}
	if len(f.Services) == 0 {
		errs["services"] = "add at least one service"
	}

	for i, svc := range f.Services {
		key := func(field string) string { return fmt.Sprintf("services[%d].%s", i, field) }

		if strings.TrimSpace(svc.Name) == "" {
			errs[key("name")] = "service name is required"
		}
		if strings.TrimSpace(svc.Path) == "" {
			errs[key("path")] = "service path is required"
		}
		if !urlPattern.MatchString(svc.URL) {
			errs[key("url")] = "URL must be a valid domain (e.g., mysite.test)"
		}
		if svc.Port < models.MinPort || svc.Port > models.MaxPort {
			errs[key("port")] = fmt.Sprintf("port must be between %d and %d", models.MinPort, models.MaxPort)
		}
		if strings.TrimSpace(svc.Command) == "" {
			errs[key("command")] = "command is required"
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
