package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// ReposCommand handles the repos command
type ReposCommand struct {
	deps Deps
}

// NewReposCommand creates a new repos command
func NewReposCommand(deps Deps) *cobra.Command {
	cmd := &ReposCommand{deps: deps}

	cobraCmd := &cobra.Command{
		Use:   "repos",
		Short: "List your hosted repositories",
		Long:  `Lists the authenticated user's GitHub repositories, most recently pushed first.`,
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the repos command
func (c *ReposCommand) Run(cmd *cobra.Command, args []string) error {
	if c.deps.GitHub == nil {
		return fmt.Errorf("GitHub token not configured: set GITHUB_TOKEN or GH_TOKEN")
	}

	repos, err := c.deps.GitHub.ListUserRepositories(cmd.Context())
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No repositories found.")
		return nil
	}

	rows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		visibility := "public"
		if repo.Private {
			visibility = "private"
		}
		rows = append(rows, []string{repo.FullName, repo.Language, visibility, repo.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("REPOSITORY", "LANGUAGE", "VISIBILITY", "DESCRIPTION").
		Rows(rows...)

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
