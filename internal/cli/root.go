package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/filesystem"
	"github.com/yuuhLKT/warden/internal/git"
	"github.com/yuuhLKT/warden/internal/github"
	"github.com/yuuhLKT/warden/internal/ide"
	"github.com/yuuhLKT/warden/internal/scaffold"
	"github.com/yuuhLKT/warden/internal/scanner"
	"github.com/yuuhLKT/warden/internal/store"
)

// NewRootCommand creates the root command
func NewRootCommand(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "warden",
		Short: "Manage local development projects",
		Long: `A CLI tool for keeping track of local development projects.

Warden registers projects with their frontend/backend services, scans a
workspace for new ones, toggles running state, opens folders in your IDE,
clones repositories and scaffolds fresh projects from templates.`,
		// Errors are printed once, by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `warden list` when no subcommand is provided.
			return (&ListCommand{deps: deps}).Run(cmd, args)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(NewScanCommand(deps))
	rootCmd.AddCommand(NewListCommand(deps))
	rootCmd.AddCommand(NewAddCommand(deps))
	rootCmd.AddCommand(NewRemoveCommand(deps))
	rootCmd.AddCommand(NewRenameCommand(deps))
	rootCmd.AddCommand(NewSelectCommand(deps))
	rootCmd.AddCommand(NewOpenCommand(deps))
	rootCmd.AddCommand(NewStartCommand(deps))
	rootCmd.AddCommand(NewStopCommand(deps))
	rootCmd.AddCommand(NewToggleCommand(deps))
	rootCmd.AddCommand(NewCloneCommand(deps))
	rootCmd.AddCommand(NewReposCommand(deps))
	rootCmd.AddCommand(NewScaffoldCommand(deps))
	rootCmd.AddCommand(NewSettingsCommand(deps))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	configDir, err := fs.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate user config directory: %w", err)
	}

	st, err := store.OpenSQLite(filepath.Join(configDir, "warden", "warden.db"))
	if err != nil {
		return fmt.Errorf("failed to open project database: %w", err)
	}
	defer st.Close()

	// Without a token the GitHub-backed commands report how to get one.
	var ghClient github.GitHubClient
	if client, err := github.NewClientFromEnv(); err == nil {
		ghClient = client
	}

	deps := Deps{
		FS:       fs,
		Store:    st,
		Scanner:  scanner.New(fs),
		Git:      git.NewOSGitClient(),
		GitHub:   ghClient,
		Launcher: ide.NewOSLauncher(),
		Runner:   scaffold.NewOSRunner(),
	}

	return NewRootCommand(deps).Execute()
}
