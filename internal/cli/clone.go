package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/yuuhLKT/warden/internal/git"
	"github.com/yuuhLKT/warden/internal/tui"
)

// CloneCommand handles the clone command
type CloneCommand struct {
	deps Deps
}

// NewCloneCommand creates a new clone command
func NewCloneCommand(deps Deps) *cobra.Command {
	cmd := &CloneCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "clone [url]",
		Short: "Clone a repository and register it as a project",
		Long: `Clones a repository into the workspace and registers the result.

With --pick and a GITHUB_TOKEN/GH_TOKEN the repository is chosen from
your hosted repositories instead of passing a URL.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("dir", "", "Destination directory (defaults to the workspace path)")
	cobraCmd.Flags().Bool("pick", false, "Pick the repository from your GitHub account")

	return cobraCmd
}

// Run executes the clone command
func (c *CloneCommand) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := c.deps.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	url := ""
	if len(args) > 0 {
		url = args[0]
	}

	pick, _ := cmd.Flags().GetBool("pick")
	if pick {
		url, err = c.pickRepository(cmd)
		if err != nil {
			return err
		}
		if url == "" {
			return nil
		}
	}
	if url == "" {
		return fmt.Errorf("no repository: pass a URL or use --pick")
	}

	destDir, _ := cmd.Flags().GetString("dir")
	if destDir == "" {
		destDir = cfg.WorkspacePath
	}
	if destDir == "" {
		return fmt.Errorf("no destination: pass --dir or set workspace_path in settings")
	}

	fmt.Printf("Cloning %s into %s...\n", url, destDir)
	if err := c.deps.Git.WithContext(ctx).Clone(url, destDir); err != nil {
		return err
	}

	repoPath := filepath.Join(destDir, git.RepoNameFromURL(url))

	detected, err := c.deps.Scanner.ScanProject(ctx, repoPath, cfg.ScanDepth)
	if err != nil {
		return fmt.Errorf("failed to scan cloned repository: %w", err)
	}
	c.deps.inspectGit(&detected)

	reg, err := c.deps.loadRegistry(ctx)
	if err != nil {
		return err
	}

	project, err := reg.AddDetected(ctx, detected, cfg.DefaultSuffix)
	if err != nil {
		return fmt.Errorf("failed to register cloned project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Cloned and registered %s with %d service(s)\n",
		project.Name, len(project.Services))
	return nil
}

// pickRepository lets the user choose from their hosted repositories.
// Returns "" on abort.
func (c *CloneCommand) pickRepository(cmd *cobra.Command) (string, error) {
	if c.deps.GitHub == nil {
		return "", fmt.Errorf("GitHub token not configured: set GITHUB_TOKEN or GH_TOKEN")
	}

	repos, err := c.deps.GitHub.ListUserRepositories(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(repos) == 0 {
		return "", fmt.Errorf("no repositories found")
	}

	opts := make([]huh.Option[string], 0, len(repos))
	for _, repo := range repos {
		label := repo.FullName
		if repo.Description != "" {
			label = fmt.Sprintf("%s  %s", repo.FullName, repo.Description)
		}
		opts = append(opts, huh.NewOption(label, repo.CloneURL))
	}

	selected := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Repository").
			Description("Pick the repository to clone."),
	).
		WithTheme(tui.NewHuhTheme()).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return "", nil
		}
		return "", err
	}

	return selected, nil
}
