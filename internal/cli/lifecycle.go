package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/tui"
)

// StartCommand handles the start command
type StartCommand struct {
	deps Deps
}

// NewStartCommand creates a new start command
func NewStartCommand(deps Deps) *cobra.Command {
	cmd := &StartCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "start [id|name]",
		Short: "Mark every service of a project as running",
		Long: `Marks all of a project's services as running.

The status is a local dashboard state: warden never spawns or kills the
actual processes and the status is not written to the database.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the start command
func (c *StartCommand) Run(cmd *cobra.Command, args []string) error {
	resolved, err := resolveProject(c.deps, cmd, args)
	if err != nil {
		return err
	}

	resolved.registry.StartAll(resolved.project.ID)
	printProject(cmd, resolved)
	return nil
}

// StopCommand handles the stop command
type StopCommand struct {
	deps Deps
}

// NewStopCommand creates a new stop command
func NewStopCommand(deps Deps) *cobra.Command {
	cmd := &StopCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "stop [id|name]",
		Short: "Mark every service of a project as stopped",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the stop command
func (c *StopCommand) Run(cmd *cobra.Command, args []string) error {
	resolved, err := resolveProject(c.deps, cmd, args)
	if err != nil {
		return err
	}

	resolved.registry.StopAll(resolved.project.ID)
	printProject(cmd, resolved)
	return nil
}

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	deps Deps
}

// NewToggleCommand creates a new toggle command
func NewToggleCommand(deps Deps) *cobra.Command {
	cmd := &ToggleCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "toggle <service> [id|name]",
		Short: "Toggle one service between running and stopped",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the toggle command
func (c *ToggleCommand) Run(cmd *cobra.Command, args []string) error {
	resolved, err := resolveProject(c.deps, cmd, args[1:])
	if err != nil {
		return err
	}

	service := findService(resolved.project, args[0])
	if service == nil {
		return fmt.Errorf("service %s not found in project %s", args[0], resolved.project.Name)
	}

	resolved.registry.Toggle(resolved.project.ID, service.ID)
	printProject(cmd, resolved)
	return nil
}

// findService matches a service by ID or name.
func findService(project *models.Project, idOrName string) *models.Service {
	for i := range project.Services {
		svc := &project.Services[i]
		if svc.ID == idOrName || svc.Name == idOrName {
			return svc
		}
	}
	return nil
}

// printProject re-reads the project from the registry and renders it.
func printProject(cmd *cobra.Command, resolved *registryProject) {
	project, err := resolved.registry.Get(resolved.project.ID)
	if err != nil {
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderProjects([]models.Project{*project}, ""))
}
