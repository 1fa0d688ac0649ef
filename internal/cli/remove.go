package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	deps Deps
}

// NewRemoveCommand creates a new remove command
func NewRemoveCommand(deps Deps) *cobra.Command {
	cmd := &RemoveCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "remove <id|name>",
		Short: "Remove a project and its services",
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the remove command
func (c *RemoveCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	project, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	if err := reg.Remove(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to remove project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", project.Name)
	return nil
}

// RenameCommand handles the rename command
type RenameCommand struct {
	deps Deps
}

// NewRenameCommand creates a new rename command
func NewRenameCommand(deps Deps) *cobra.Command {
	cmd := &RenameCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "rename <id|name> <new-name>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the rename command
func (c *RenameCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	project, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	oldName := project.Name
	if err := reg.Rename(ctx, project.ID, args[1]); err != nil {
		return fmt.Errorf("failed to rename project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Renamed %s to %s\n", oldName, args[1])
	return nil
}
