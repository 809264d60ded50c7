package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/sumwatshade/macauwx/cmd/report"
)

// FallbackListing is reported by List when the templates dir does not exist.
const FallbackListing = "default_template.md"

const templateExt = ".md"

// Store gives access to template files.
type Store interface {
	// List returns the template file names, sorted.
	List() ([]string, error)
	// Load reads and parses the named template.
	Load(name string) (report.TemplateDocument, error)
}

var _ Store = (*fileStore)(nil)

// fileStore reads *.md templates from baseDir.
type fileStore struct {
	baseDir string
}

// NewFileStore creates a store rooted at dir. The dir is not required to exist.
func NewFileStore(dir string) (Store, error) {
	if dir == "" {
		return nil, errors.New(ErrMsgEmptyDir)
	}
	return &fileStore{baseDir: dir}, nil
}

func (s *fileStore) templatePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.baseDir, name)
}

func (s *fileStore) List() ([]string, error) {
	dir, err := os.ReadDir(s.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{FallbackListing}, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, de := range dir {
		if de.IsDir() || !strings.HasSuffix(de.Name(), templateExt) {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *fileStore) Load(name string) (report.TemplateDocument, error) {
	file := s.templatePath(name)
	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return report.TemplateDocument{}, newNotFoundError(name, file)
	}
	if err != nil {
		return report.TemplateDocument{}, newReadError(name, file, err)
	}
	doc, err := report.ParseTemplate(string(b))
	if err != nil {
		var customErr *cuserr.CustomError
		if errors.As(err, &customErr) {
			return report.TemplateDocument{}, customErr.WithMetadata(report.MetaKeyTemplate, name)
		}
		return report.TemplateDocument{}, err
	}
	return doc, nil
}
