package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// CommandData is what a template's command can reference.
type CommandData struct {
	Name string
}

// RenderCommand expands the template's command with the project name.
// Commands are text/template strings with the sprig functions available,
// so templates can write {{.Name | kebabcase}} and similar.
func RenderCommand(tmpl Template, data CommandData) (string, error) {
	parsed, err := template.New(tmpl.ID).Funcs(sprig.FuncMap()).Parse(tmpl.Command)
	if err != nil {
		return "", fmt.Errorf("failed to parse command of template %s: %w", tmpl.ID, err)
	}

	var buf bytes.Buffer
	if err := parsed.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render command of template %s: %w", tmpl.ID, err)
	}

	return buf.String(), nil
}
