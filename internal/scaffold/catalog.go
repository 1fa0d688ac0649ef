package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuuhLKT/warden/internal/models"
)

//go:embed templates/*.md
var templateFiles embed.FS

// Template describes one scaffold recipe. The markdown body is the
// human-readable description shown when picking a template.
type Template struct {
	ID             string                        `yaml:"id"`
	Name           string                        `yaml:"name"`
	Language       models.ScaffoldLanguage       `yaml:"language"`
	PackageManager models.ScaffoldPackageManager `yaml:"packageManager"`
	Category       string                        `yaml:"category"`
	DefaultPort    int                           `yaml:"defaultPort"`
	Tags           []string                      `yaml:"tags"`
	Command        string                        `yaml:"command"`

	Description string `yaml:"-"`
}

// HasTag reports whether the template carries the given tag.
func (t Template) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// Catalog holds the loaded templates.
type Catalog struct {
	templates []Template
}

// LoadCatalog parses every embedded template file.
func LoadCatalog() (*Catalog, error) {
	entries, err := templateFiles.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}

	var templates []Template
	for _, entry := range entries {
		data, err := templateFiles.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		tmpl, err := parseTemplate(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})

	return &Catalog{templates: templates}, nil
}

func parseTemplate(name string, data []byte) (Template, error) {
	var tmpl Template
	body, err := frontmatter.Parse(bytes.NewReader(data), &tmpl)
	if err != nil {
		return Template{}, fmt.Errorf("failed to parse frontmatter of %s: %w", name, err)
	}

	if tmpl.ID == "" {
		return Template{}, fmt.Errorf("template %s has no id", name)
	}
	if tmpl.Command == "" {
		return Template{}, fmt.Errorf("template %s has no command", name)
	}

	tmpl.Description = strings.TrimSpace(string(body))
	return tmpl, nil
}

// Templates returns every template in id order.
func (c *Catalog) Templates() []Template {
	result := make([]Template, len(c.templates))
	copy(result, c.templates)
	return result
}

// ByPackageManager returns the templates filed under the given package
// manager, preserving id order.
func (c *Catalog) ByPackageManager(pm models.ScaffoldPackageManager) []Template {
	var result []Template
	for _, tmpl := range c.templates {
		if tmpl.PackageManager == pm {
			result = append(result, tmpl)
		}
	}
	return result
}

// Get looks up a template by id.
func (c *Catalog) Get(id string) (Template, error) {
	for _, tmpl := range c.templates {
		if tmpl.ID == id {
			return tmpl, nil
		}
	}
	return Template{}, fmt.Errorf("template %s not found", id)
}
