package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/vibe/internal/mood"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
	quoteStyle     = lipgloss.NewStyle().Italic(true)
)

// moodStyle colours text with the category's profile colour.
func moodStyle(c mood.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(mood.Lookup(c).Color)).
		Bold(true)
}
