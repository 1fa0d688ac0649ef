package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/registry"
	"github.com/yuuhLKT/warden/internal/tui/add"
)

// AddCommand handles the add command
type AddCommand struct {
	deps Deps
}

// NewAddCommand creates a new add command
func NewAddCommand(deps Deps) *cobra.Command {
	cmd := &AddCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a project",
		Long: `Register a project and its services.

Without flags this starts an interactive flow. With --name and --folder
it registers a single-service project non-interactively.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("name", "", "Project name")
	cobraCmd.Flags().String("folder", "", "Project folder")
	cobraCmd.Flags().String("service", "", "Service name (defaults to the project name)")
	cobraCmd.Flags().String("type", "frontend", "Service type: frontend or backend")
	cobraCmd.Flags().String("stack", "other", "Service stack")
	cobraCmd.Flags().String("url", "", "Local URL (defaults to <slug>.<suffix>)")
	cobraCmd.Flags().Int("port", models.DefaultPort, "Local port")
	cobraCmd.Flags().String("command", models.DefaultCommand, "Dev command")

	return cobraCmd
}

// Run executes the add command
func (c *AddCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	name, _ := cmd.Flags().GetString("name")
	folder, _ := cmd.Flags().GetString("folder")

	var form *registry.ProjectForm
	if name != "" && folder != "" {
		form = c.formFromFlags(cmd, name, folder, cfg.DefaultSuffix)
	} else {
		flow := add.NewFlow(cfg.DefaultSuffix)
		form, err = flow.Run()
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if form == nil {
			return nil
		}
	}

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	project, err := reg.Add(ctx, *form)
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), add.RenderSuccess(project))
	return nil
}

func (c *AddCommand) formFromFlags(cmd *cobra.Command, name, folder, suffix string) *registry.ProjectForm {
	serviceName, _ := cmd.Flags().GetString("service")
	if serviceName == "" {
		serviceName = name
	}
	serviceType, _ := cmd.Flags().GetString("type")
	stack, _ := cmd.Flags().GetString("stack")
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = registry.ServiceURL(name, suffix)
	}
	port, _ := cmd.Flags().GetInt("port")
	command, _ := cmd.Flags().GetString("command")

	return &registry.ProjectForm{
		Name:   name,
		Folder: folder,
		Services: []registry.ServiceForm{
			{
				Name:    serviceName,
				Type:    models.CoerceServiceType(serviceType),
				Stack:   models.CoerceStack(stack),
				Path:    folder,
				URL:     url,
				Port:    port,
				Command: command,
			},
		},
	}
}
