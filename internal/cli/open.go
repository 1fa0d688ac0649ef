package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/models"
)

// OpenCommand handles the open command
type OpenCommand struct {
	deps Deps
}

// NewOpenCommand creates a new open command
func NewOpenCommand(deps Deps) *cobra.Command {
	cmd := &OpenCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "open [id|name]",
		Short: "Open a project folder in your IDE",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().String("ide", "", "IDE to use for this invocation (vscode, cursor, zed, ...)")

	return cobraCmd
}

// Run executes the open command
func (c *OpenCommand) Run(cmd *cobra.Command, args []string) error {
	resolved, err := resolveProject(c.deps, cmd, args)
	if err != nil {
		return err
	}

	command := resolved.settings.EditorCommand()
	if override, _ := cmd.Flags().GetString("ide"); override != "" {
		command = models.IDEConfigs[models.CoerceIDE(override)].Command
	}

	if err := c.deps.Launcher.Open(command, resolved.project.Folder); err != nil {
		return fmt.Errorf("failed to open %s: %w", resolved.project.Name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Opened %s with %s\n", resolved.project.Name, command)
	return nil
}
