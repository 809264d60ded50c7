package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sumwatshade/macauwx/cmd/feed"
	"github.com/sumwatshade/macauwx/cmd/report"
	"github.com/sumwatshade/macauwx/cmd/templates"
	"go.uber.org/zap"
)

// plan is what a run fetches and which template it renders with.
type plan struct {
	Language report.Language
	Profile  templates.Profile
	URL      string
	Template string
}

// planRun applies the selection rules: an explicit language also picks its
// feed URL; otherwise an explicit URL picks the language from its file name;
// otherwise the catalog default is used.
func planRun(cat *templates.Catalog, s settings) (plan, error) {
	var (
		lang report.Language
		url  string
	)
	switch {
	case s.Language != "":
		l, err := report.ParseLanguage(s.Language)
		if err != nil {
			return plan{}, err
		}
		lang = l
	case s.URL != "":
		lang = cat.FromURL(s.URL)
		url = s.URL
	default:
		lang = cat.Default()
	}

	profile, ok := cat.Profile(lang)
	if !ok {
		return plan{}, fmt.Errorf("language %q is not in the catalog", lang)
	}
	if url == "" {
		url = profile.FeedURL
	}

	tmpl := s.Template
	if tmpl == "" {
		tmpl = profile.DefaultTemplate
	}

	return plan{Language: lang, Profile: profile, URL: url, Template: tmpl}, nil
}

// generator runs one fetch-and-render cycle.
type generator struct {
	feed     feed.Service
	store    templates.Store
	renderer *report.Renderer
	logger   *zap.Logger
	now      func() time.Time
}

func newGenerator(s settings, logger *zap.Logger) (*generator, error) {
	store, err := templates.NewFileStore(s.TemplatesDir)
	if err != nil {
		return nil, err
	}
	return &generator{
		feed:  feed.NewService(s.Timeout, logger),
		store: store,
		renderer: report.NewRenderer(
			report.WithStrict(s.Strict),
			report.WithDefaults(templates.Builtins()),
			report.WithLogger(logger),
		),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Generate fetches the bulletin for p and renders it. Nothing is returned
// unless every step succeeds.
func (g *generator) Generate(ctx context.Context, p plan) (string, error) {
	doc, source, err := templates.Resolve(g.store, p.Template, g.logger)
	if err != nil {
		return "", fmt.Errorf("loading template %s: %w", p.Template, err)
	}

	g.logger.Info("fetching weather data",
		zap.String("language", p.Profile.Name),
		zap.String("url", p.URL))
	bulletin, err := g.feed.Fetch(ctx, p.URL)
	if err != nil {
		return "", err
	}

	g.logger.Info("generating markdown",
		zap.String("template", p.Template),
		zap.String("source", string(source)))
	dc := bulletin.DocumentContext(p.Language, p.Profile.NilTide, g.now())
	if source == templates.SourceBuiltin {
		return g.renderer.RenderDefault(dc)
	}
	return g.renderer.Render(dc, doc)
}

// writeOutput prints markdown to stdout, or writes it to path when set.
func writeOutput(path, markdown string, stdout io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, markdown)
		return err
	}
	return os.WriteFile(path, []byte(markdown), 0o644)
}

// listTemplates prints the template files available in the store.
func listTemplates(store templates.Store, w io.Writer) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Available templates:")
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	return nil
}
