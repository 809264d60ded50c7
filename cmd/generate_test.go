package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumwatshade/macauwx/cmd/feed"
	"github.com/sumwatshade/macauwx/cmd/report"
	"github.com/sumwatshade/macauwx/cmd/templates"
	"go.uber.org/zap"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<Data>
  <SysAuthor>SMG</SysAuthor>
  <SysPubdate>2024-01-01 10:00</SysPubdate>
  <SysLanguage>English</SysLanguage>
  <TodaySituation>Fine and dry {date}.</TodaySituation>
  <WeatherForecast>
    <ValidFor>2024-01-02</ValidFor>
    <WeatherDescription>Sunny.</WeatherDescription>
    <AstronomicalTide>NIL</AstronomicalTide>
  </WeatherForecast>
  <WeatherForecast>
    <ValidFor>2024-01-03</ValidFor>
    <WeatherDescription>Cloudy.</WeatherDescription>
    <AstronomicalTide>High 05:12</AstronomicalTide>
  </WeatherForecast>
</Data>`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeedXML))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPlanRun(t *testing.T) {
	cat, err := templates.DefaultCatalog()
	require.NoError(t, err)

	tests := []struct {
		name     string
		s        settings
		lang     report.Language
		url      string
		template string
	}{
		{
			name:     "defaults to chinese",
			s:        settings{},
			lang:     report.Chinese,
			url:      "https://xml.smg.gov.mo/c_forecast.xml",
			template: "default_template.md",
		},
		{
			name:     "language picks url and template",
			s:        settings{Language: "pt"},
			lang:     report.Portuguese,
			url:      "https://xml.smg.gov.mo/p_forecast.xml",
			template: "default_pt.md",
		},
		{
			name:     "language overrides url",
			s:        settings{Language: "en", URL: "http://x/c_forecast.xml"},
			lang:     report.English,
			url:      "https://xml.smg.gov.mo/e_forecast.xml",
			template: "default_en.md",
		},
		{
			name:     "url detects language",
			s:        settings{URL: "http://mirror/e_forecast.xml"},
			lang:     report.English,
			url:      "http://mirror/e_forecast.xml",
			template: "default_en.md",
		},
		{
			name:     "explicit template",
			s:        settings{Language: "zh", Template: "custom.md"},
			lang:     report.Chinese,
			url:      "https://xml.smg.gov.mo/c_forecast.xml",
			template: "custom.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := planRun(cat, tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.lang, p.Language)
			assert.Equal(t, tt.url, p.URL)
			assert.Equal(t, tt.template, p.Template)
		})
	}

	_, err = planRun(cat, settings{Language: "fr"})
	require.Error(t, err)
}

func newTestGenerator(t *testing.T, dir string, strict bool) *generator {
	t.Helper()
	g, err := newGenerator(settings{TemplatesDir: dir, Strict: strict, Timeout: time.Second}, zap.NewNop())
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerator_Generate_FileTemplate(t *testing.T) {
	srv := newFeedServer(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compact.md"), []byte(
		"# {language} {author}\n{today_situation}\n{forecasts}\n({current_time})\n<!-- FORECAST_ITEM -->\n- {date} {description} [{tide}];\n"), 0o644))

	g := newTestGenerator(t, dir, true)
	cat, err := templates.DefaultCatalog()
	require.NoError(t, err)
	p, err := planRun(cat, settings{URL: srv.URL + "/e_forecast.xml", Template: "compact.md"})
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t,
		"# en SMG\nFine and dry {date}.\n- 2024-01-02 Sunny. [No data];- 2024-01-03 Cloudy. [High 05:12];\n(2024-01-01 12:00:00)",
		out)
}

func TestGenerator_Generate_FallsBackToBuiltin(t *testing.T) {
	srv := newFeedServer(t)
	g := newTestGenerator(t, filepath.Join(t.TempDir(), "absent"), true)
	cat, err := templates.DefaultCatalog()
	require.NoError(t, err)
	p, err := planRun(cat, settings{URL: srv.URL + "/p_forecast.xml"})
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Previsão Meteorológica de Macau"))
	assert.Contains(t, out, "**Maré Astronómica**: Sem dados")
	assert.Contains(t, out, "### 2024-01-03")
	assert.Contains(t, out, "*Última atualização: 2024-01-01 12:00:00*")
	assert.Equal(t, 2, strings.Count(out, "### "))
}

func TestGenerator_Generate_StrictFailureEmitsNothing(t *testing.T) {
	srv := newFeedServer(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typo.md"), []byte("{autor}\n{forecasts}"), 0o644))

	cat, err := templates.DefaultCatalog()
	require.NoError(t, err)
	p, err := planRun(cat, settings{URL: srv.URL + "/e_forecast.xml", Template: "typo.md"})
	require.NoError(t, err)

	out, err := newTestGenerator(t, dir, true).Generate(context.Background(), p)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, report.IsMissingPlaceholderError(err))

	out, err = newTestGenerator(t, dir, false).Generate(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{autor}\n"))
}

func TestGenerator_Generate_FeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cat, err := templates.DefaultCatalog()
	require.NoError(t, err)
	p, err := planRun(cat, settings{URL: srv.URL})
	require.NoError(t, err)

	out, err := newTestGenerator(t, t.TempDir(), false).Generate(context.Background(), p)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), feed.ErrMsgUnexpectedStatus)
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput("", "# md", &buf))
	assert.Equal(t, "# md\n", buf.String())

	file := filepath.Join(t.TempDir(), "out.md")
	buf.Reset()
	require.NoError(t, writeOutput(file, "# md", &buf))
	assert.Empty(t, buf.String())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "# md", string(data))
}

type failingStore struct{ templates.Store }

func (failingStore) List() ([]string, error) { return nil, errors.New("boom") }

func TestListTemplates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"default_en.md", "a.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	store, err := templates.NewFileStore(dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, listTemplates(store, &buf))
	assert.Equal(t, "Available templates:\n  - a.md\n  - default_en.md\n", buf.String())

	require.Error(t, listTemplates(failingStore{}, &buf))
}
