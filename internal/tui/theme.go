package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the huh theme used by every interactive flow,
// matching the purple accent of the rendered output.
func NewHuhTheme() *huh.Theme {
	accent := lipgloss.Color("#7D56F4")
	green := lipgloss.Color("#04B575")

	theme := huh.ThemeCharm()
	theme.Focused.Title = theme.Focused.Title.Foreground(accent).Bold(true)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(accent)
	theme.Focused.SelectedPrefix = theme.Focused.SelectedPrefix.Foreground(green)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(accent)

	return theme
}
