package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return infoStyle.Render("Initializing...")
	}

	var body string
	switch {
	case m.loading:
		body = infoStyle.Render("Fetching " + m.lang.String() + " forecast...")
	case m.err != nil:
		body = errStyle.Render("error: " + m.err.Error())
	default:
		body = m.viewport.View()
	}

	header := headerStyle.Render(appTitle) + " " + tabs(m.langs, m.lang, max(0, m.width-10))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, contentStyle.Render(body), sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}
