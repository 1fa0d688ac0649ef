package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/registry"
	"github.com/yuuhLKT/warden/internal/scaffold"
	"github.com/yuuhLKT/warden/internal/tui"
)

// ScaffoldCommand handles the scaffold command
type ScaffoldCommand struct {
	deps Deps
}

// NewScaffoldCommand creates a new scaffold command
func NewScaffoldCommand(deps Deps) *cobra.Command {
	cmd := &ScaffoldCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create a new project from a template",
		Long: `Creates a new project from a scaffold template and registers it.

The template's command runs through the shell in the target folder; on
success the project is registered with a service derived from the
template.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("template", "", "Template id (skips the interactive picker)")
	cobraCmd.Flags().String("pm", "", "Filter templates by package manager")
	cobraCmd.Flags().String("name", "", "Project name")
	cobraCmd.Flags().String("folder", "", "Folder to scaffold into")
	cobraCmd.Flags().String("url", "", "Local URL (defaults to <slug>.<suffix>)")
	cobraCmd.Flags().Int("port", 0, "Local port (defaults to the template's port)")

	return cobraCmd
}

// Run executes the scaffold command
func (c *ScaffoldCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	catalog, err := scaffold.LoadCatalog()
	if err != nil {
		return err
	}

	tmpl, aborted, err := c.resolveTemplate(cmd, catalog)
	if err != nil {
		return err
	}
	if aborted {
		return nil
	}

	input, aborted, err := c.resolveInput(cmd, cfg.DefaultSuffix, cfg.WorkspacePath)
	if err != nil {
		return err
	}
	if aborted {
		return nil
	}

	command, err := scaffold.RenderCommand(tmpl, scaffold.CommandData{Name: input.Name})
	if err != nil {
		return err
	}

	fmt.Printf("Running: %s\n", command)
	output, err := c.deps.Runner.Run(ctx, input.Folder, command)
	if err != nil {
		return fmt.Errorf("failed to scaffold project: %w", err)
	}
	if output != "" {
		fmt.Print(output)
	}

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	project, err := reg.Add(ctx, scaffold.BuildProjectForm(tmpl, input))
	if err != nil {
		return fmt.Errorf("failed to register scaffolded project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Scaffolded %s from %s\n", project.Name, tmpl.Name)
	return nil
}

// resolveTemplate picks a template from flags or interactively.
// The bool result reports a user abort.
func (c *ScaffoldCommand) resolveTemplate(cmd *cobra.Command, catalog *scaffold.Catalog) (scaffold.Template, bool, error) {
	if id, _ := cmd.Flags().GetString("template"); id != "" {
		tmpl, err := catalog.Get(id)
		return tmpl, false, err
	}

	templates := catalog.Templates()
	if pm, _ := cmd.Flags().GetString("pm"); pm != "" {
		templates = catalog.ByPackageManager(models.CoerceScaffoldPackageManager(pm))
		if len(templates) == 0 {
			return scaffold.Template{}, false, fmt.Errorf("no templates for package manager %s", pm)
		}
	}

	opts := make([]huh.Option[string], 0, len(templates))
	for _, tmpl := range templates {
		label := fmt.Sprintf("%s (%s, %s)", tmpl.Name, tmpl.Language, tmpl.PackageManager)
		opts = append(opts, huh.NewOption(label, tmpl.ID))
	}

	selected := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Template").
			Description("Pick a scaffold template."),
	).
		WithTheme(tui.NewHuhTheme()).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return scaffold.Template{}, true, nil
		}
		return scaffold.Template{}, false, err
	}

	tmpl, err := catalog.Get(selected)
	return tmpl, false, err
}

// resolveInput collects name/folder/url/port from flags or interactively.
func (c *ScaffoldCommand) resolveInput(cmd *cobra.Command, suffix, workspacePath string) (scaffold.ProjectInput, bool, error) {
	name, _ := cmd.Flags().GetString("name")
	folder, _ := cmd.Flags().GetString("folder")
	url, _ := cmd.Flags().GetString("url")
	port, _ := cmd.Flags().GetInt("port")

	if folder == "" {
		folder = workspacePath
	}

	if name == "" || folder == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Project name").
					Placeholder("my-app").
					Value(&name).
					Validate(func(v string) error {
						if v == "" {
							return fmt.Errorf("project name is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("Folder to scaffold into").
					Value(&folder).
					Validate(func(v string) error {
						if v == "" {
							return fmt.Errorf("folder is required")
						}
						return nil
					}),
			).
				Title("New Project"),
		).
			WithTheme(tui.NewHuhTheme()).
			WithShowHelp(true).
			WithProgramOptions(tea.WithAltScreen())

		if err := form.Run(); err != nil {
			if err == huh.ErrUserAborted {
				return scaffold.ProjectInput{}, true, nil
			}
			return scaffold.ProjectInput{}, false, err
		}
	}

	if url == "" {
		url = registry.ServiceURL(name, suffix)
	}

	return scaffold.ProjectInput{
		Name:   name,
		Folder: folder,
		URL:    url,
		Port:   port,
	}, false, nil
}
