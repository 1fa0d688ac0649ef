package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	deps Deps
}

// NewScanCommand creates a new scan command
func NewScanCommand(deps Deps) *cobra.Command {
	cmd := &ScanCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a workspace and register detected projects",
		Long: `Scans the workspace for projects and registers the ones that are new.

Each top-level folder with a known manifest (package.json, Cargo.toml,
go.mod, ...) becomes a candidate. Already registered folders are left
untouched; a re-scan never removes anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Int("depth", 0, "How deep to look for nested projects (defaults to the scan_depth setting)")

	return cobraCmd
}

// Run executes the scan command
func (c *ScanCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	root := cfg.WorkspacePath
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		return fmt.Errorf("no workspace path: pass one or set it with `warden settings set workspace_path <path>`")
	}

	depth, _ := cmd.Flags().GetInt("depth")
	if depth <= 0 {
		depth = cfg.ScanDepth
	}

	fmt.Printf("Scanning %s...\n", root)

	detected, err := c.deps.Scanner.ScanWorkspace(ctx, root, depth)
	if err != nil {
		return fmt.Errorf("failed to scan workspace: %w", err)
	}

	if len(detected) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	for i := range detected {
		c.deps.inspectGit(&detected[i])
	}

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	before := len(reg.Projects())
	reg.SyncWorkspace(ctx, detected, cfg.DefaultSuffix)
	added := len(reg.Projects()) - before

	fmt.Printf("\nScan complete: %d project(s) found, %d newly registered.\n", len(detected), added)
	return nil
}
