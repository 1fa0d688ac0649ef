package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yuuhLKT/warden/internal/models"
)

// RenderProjects renders the project list the way `warden list` shows it:
// one block per project with a service table underneath. The selected
// project carries a marker in front of its name.
func RenderProjects(projects []models.Project, selectedID string) string {
	if len(projects) == 0 {
		return SubtleStyle.Render("No projects registered. Run `warden scan` or `warden add`.") + "\n"
	}

	var b strings.Builder
	for i, project := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderProject(project, project.ID == selectedID))
	}
	return b.String()
}

func renderProject(project models.Project, selected bool) string {
	var b strings.Builder

	name := project.Name
	if selected {
		name = SelectedStyle.Render("› " + name)
	} else {
		name = TitleStyle.Render(name)
	}

	running := models.CountRunningServices(&project)
	summary := fmt.Sprintf("%s · %d/%d running", project.Category, running, len(project.Services))

	b.WriteString(name + "  " + DescStyle.Render(summary) + "\n")

	location := project.Folder
	if project.GitBranch != "" {
		location += "  [" + project.GitBranch + "]"
	}
	if project.GitRemote != "" {
		location += "  " + project.GitRemote
	}
	b.WriteString(SubtleStyle.Render(location) + "\n")

	rows := make([][]string, 0, len(project.Services))
	for _, svc := range project.Services {
		rows = append(rows, []string{
			svc.Name,
			string(svc.Type),
			string(svc.Stack),
			fmt.Sprintf("%s:%d", svc.URL, svc.Port),
			renderStatus(svc.Status),
			svc.Command,
		})
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
		Headers("SERVICE", "TYPE", "STACK", "URL", "STATUS", "COMMAND").
		Rows(rows...)

	b.WriteString(t.Render() + "\n")
	return b.String()
}

func renderStatus(status models.ServiceStatus) string {
	switch status {
	case models.StatusRunning:
		return RunningStyle.Render("● running")
	case models.StatusError:
		return ErrorStyle.Render("✗ error")
	default:
		return StoppedStyle.Render("○ stopped")
	}
}
