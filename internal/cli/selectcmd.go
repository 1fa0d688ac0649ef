package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/registry"
	"github.com/yuuhLKT/warden/internal/settings"
)

// registryProject pairs a resolved project with the registry and settings
// it came from.
type registryProject struct {
	registry *registry.Registry
	project  *models.Project
	settings settings.Settings
}

// SelectCommand handles the select command
type SelectCommand struct {
	deps Deps
}

// NewSelectCommand creates a new select command
func NewSelectCommand(deps Deps) *cobra.Command {
	cmd := &SelectCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "select [id|name]",
		Short: "Select the project other commands default to",
		Long: `Selects a project. Commands like open, start and stop fall back to
the selected project when no project argument is given. Without an
argument the current selection is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the select command
func (c *SelectCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if cfg.SelectedProject == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No project selected.")
			return nil
		}
		project, err := reg.Get(cfg.SelectedProject)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No project selected.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Selected: %s (%s)\n", project.Name, project.Folder)
		return nil
	}

	project, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	reg.Select(project.ID)
	cfg.SelectedProject = project.ID
	if err := settings.NewStore(c.deps.FS).Save(cfg); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Selected %s\n", project.Name)
	return nil
}

// resolveProject picks the project from the argument or the saved selection.
func resolveProject(deps Deps, cmd *cobra.Command, args []string) (*registryProject, error) {
	cfg, err := deps.loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	reg, err := deps.loadRegistry(cmd.Context())
	if err != nil {
		return nil, err
	}

	key := cfg.SelectedProject
	if len(args) > 0 {
		key = args[0]
	}
	if key == "" {
		return nil, fmt.Errorf("no project given and none selected: run `warden select <id|name>` first")
	}

	project, err := reg.Get(key)
	if err != nil {
		return nil, err
	}

	return &registryProject{registry: reg, project: project, settings: cfg}, nil
}
