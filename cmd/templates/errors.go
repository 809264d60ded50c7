package templates

import (
	"errors"

	"github.com/itsatony/go-cuserr"
)

const (
	ErrMsgTemplateNotFound = "template file not found"
	ErrMsgTemplateRead     = "failed to read template file"
	ErrMsgEmptyDir         = "empty templates dir"
	ErrMsgCatalogRead      = "failed to read language catalog"
	ErrMsgCatalogInvalid   = "invalid language catalog"
	ErrMsgCatalogEmpty     = "language catalog has no languages"

	ErrCodeStore   = "WX_TEMPLATE_STORE"
	ErrCodeCatalog = "WX_CATALOG"

	MetaKeyPath     = "path"
	MetaKeyTemplate = "template"
)

// ErrTemplateNotFound is wrapped when a named template file does not exist.
var ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

func newNotFoundError(name, file string) error {
	return cuserr.WrapStdError(ErrTemplateNotFound, ErrCodeStore, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name).
		WithMetadata(MetaKeyPath, file)
}

func newReadError(name, file string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeStore, ErrMsgTemplateRead).
		WithMetadata(MetaKeyTemplate, name).
		WithMetadata(MetaKeyPath, file)
}
