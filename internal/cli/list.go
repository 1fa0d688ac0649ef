package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/tui"
)

// ListCommand handles the list command
type ListCommand struct {
	deps Deps
}

// NewListCommand creates a new list command
func NewListCommand(deps Deps) *cobra.Command {
	cmd := &ListCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered projects and their services",
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the list command
func (c *ListCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reg, err := c.deps.loadRegistry(cmd.Context())
	if err != nil {
		return err
	}

	// Selection persists across invocations through the settings file.
	selectedID := ""
	if cfg.SelectedProject != "" {
		if selected, err := reg.Get(cfg.SelectedProject); err == nil {
			reg.Select(selected.ID)
			selectedID = selected.ID
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderProjects(reg.Projects(), selectedID))
	return nil
}
