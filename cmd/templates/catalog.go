package templates

import (
	_ "embed"
	"os"
	"path"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/sumwatshade/macauwx/cmd/report"
	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var builtinCatalog []byte

// Profile describes where a language's bulletin is published and how it is
// rendered by default.
type Profile struct {
	Code            report.Language `yaml:"code"`
	Name            string          `yaml:"name"`
	FeedURL         string          `yaml:"feed_url"`
	DefaultTemplate string          `yaml:"default_template"`
	NilTide         string          `yaml:"nil_tide"`
}

// Catalog is the static per-language configuration.
type Catalog struct {
	Languages []Profile `yaml:"languages"`
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(builtinCatalog, "builtin")
}

// LoadCatalog reads a catalog file. An empty path returns DefaultCatalog.
func LoadCatalog(file string) (*Catalog, error) {
	if file == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeCatalog, ErrMsgCatalogRead).
			WithMetadata(MetaKeyPath, file)
	}
	return parseCatalog(data, file)
}

func parseCatalog(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeCatalog, ErrMsgCatalogInvalid).
			WithMetadata(MetaKeyPath, source)
	}
	for _, p := range c.Languages {
		if _, err := report.ParseLanguage(p.Code.String()); err != nil {
			return nil, err
		}
	}
	if len(c.Languages) == 0 {
		return nil, cuserr.NewValidationError(ErrCodeCatalog, ErrMsgCatalogEmpty).
			WithMetadata(MetaKeyPath, source)
	}
	return &c, nil
}

// Profile returns the entry for lang.
func (c *Catalog) Profile(lang report.Language) (Profile, bool) {
	for _, p := range c.Languages {
		if p.Code == lang {
			return p, true
		}
	}
	return Profile{}, false
}

// Default is the language used when nothing else selects one.
func (c *Catalog) Default() report.Language {
	if _, ok := c.Profile(report.Chinese); ok {
		return report.Chinese
	}
	return c.Languages[0].Code
}

// FromURL guesses the language of a feed URL by matching its file name
// against the catalog's feed URLs, falling back to Default.
func (c *Catalog) FromURL(url string) report.Language {
	name := path.Base(strings.SplitN(url, "?", 2)[0])
	for _, p := range c.Languages {
		if name == path.Base(p.FeedURL) {
			return p.Code
		}
	}
	return c.Default()
}
