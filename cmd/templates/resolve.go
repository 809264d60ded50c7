package templates

import (
	"errors"

	"github.com/sumwatshade/macauwx/cmd/report"
	"go.uber.org/zap"
)

// Source names where a resolved template came from.
type Source string

const (
	SourceFile    Source = "file"
	SourceBuiltin Source = "builtin"
)

// Resolve loads the named template from store. When the file is missing or
// not a usable template it logs a warning and returns SourceBuiltin with a
// zero document; the caller then renders with the language default.
func Resolve(store Store, name string, logger *zap.Logger) (report.TemplateDocument, Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := store.Load(name)
	if err == nil {
		return doc, SourceFile, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) && !report.IsTemplateFormatError(err) {
		return report.TemplateDocument{}, "", err
	}

	logger.Warn("template unavailable, using builtin default",
		zap.String("template", name),
		zap.Error(err))
	return report.TemplateDocument{}, SourceBuiltin, nil
}
