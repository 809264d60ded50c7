package preview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sumwatshade/macauwx/cmd/report"
)

// LoadTimeout bounds a single load triggered from the preview.
const LoadTimeout = 30 * time.Second

// Loader fetches and renders the report for a language.
type Loader func(ctx context.Context, lang report.Language) (string, error)

// Model is the bubbletea model of the preview screen.
type Model struct {
	load    Loader
	langs   []report.Language
	lang    report.Language
	content string
	err     error
	loading bool
	loaded  bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	keys keyMap
	help help.Model
}

// New creates a preview starting on initial. langs is the tab order.
func New(load Loader, langs []report.Language, initial report.Language) Model {
	return Model{
		load:  load,
		langs: langs,
		lang:  initial,
		keys:  keys,
		help:  help.New(),
	}
}

// Language returns the language currently shown.
func (m Model) Language() report.Language { return m.lang }

// Content returns the last rendered markdown.
func (m Model) Content() string { return m.content }

// Err returns the error of the last load, if any.
func (m Model) Err() error { return m.err }

// shift returns the language delta tabs away from the current one.
func (m Model) shift(delta int) report.Language {
	if len(m.langs) == 0 {
		return m.lang
	}
	idx := 0
	for i, l := range m.langs {
		if l == m.lang {
			idx = i
			break
		}
	}
	n := len(m.langs)
	return m.langs[((idx+delta)%n+n)%n]
}
