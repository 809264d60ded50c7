package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/macauwx/cmd/report"
)

// Centralized styles for consistent UX across views.
var (
	appTitle       = "macauwx"
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236"))
	contentStyle   = lipgloss.NewStyle().Padding(0, 2)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	infoStyle      = lipgloss.NewStyle().Faint(true)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func tabs(langs []report.Language, current report.Language, width int) string {
	var rendered []string
	for _, l := range langs {
		if l == current {
			rendered = append(rendered, activeTabStyle.Render(l.String()))
		} else {
			rendered = append(rendered, tabStyle.Render(l.String()))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 {
		// Ensure line doesn't overflow; truncate softly.
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
