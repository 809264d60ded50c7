package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sumwatshade/macauwx/cmd/report"
)

// renderedMsg carries the result of a load.
type renderedMsg struct {
	lang    report.Language
	content string
	err     error
}

// loadCmd runs the loader off the UI loop and reports back with renderedMsg.
func loadCmd(load Loader, lang report.Language) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		content, err := load(ctx, lang)
		return renderedMsg{lang: lang, content: content, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	// Loading starts on the first window size message.
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if !m.loaded && !m.loading { // trigger initial load once
			return m.startLoad(m.lang)
		}
		return m, nil
	case renderedMsg:
		if msg.lang != m.lang { // stale result from a previous tab
			return m, nil
		}
		m.loading = false
		m.loaded = true
		m.err = msg.err
		m.content = msg.content
		if m.ready {
			m.viewport.SetContent(m.content)
			m.viewport.GotoTop()
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.startLoad(m.shift(1))
		case key.Matches(msg, m.keys.Prev):
			return m.startLoad(m.shift(-1))
		case key.Matches(msg, m.keys.Reload):
			return m.startLoad(m.lang)
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) startLoad(lang report.Language) (Model, tea.Cmd) {
	m.lang = lang
	m.loading = true
	m.err = nil
	return m, loadCmd(m.load, lang)
}

// resize fits the viewport between the header and the help footer.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w := max(1, m.width-contentStyle.GetHorizontalPadding())
	h := max(1, m.height-chromeHeight(m.help.ShowAll))
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.viewport.SetContent(m.content)
		m.ready = true
		return
	}
	m.viewport.Width = w
	m.viewport.Height = h
}

// chromeHeight is the number of rows used by header, separators and help.
func chromeHeight(fullHelp bool) int {
	if fullHelp {
		return 7
	}
	return 4
}
