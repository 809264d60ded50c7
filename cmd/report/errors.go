package report

import (
	"errors"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Error messages
const (
	ErrMsgTemplateEmpty      = "template text is empty"
	ErrMsgNoDefaultTemplate  = "no default template for language"
	ErrMsgMissingPlaceholder = "placeholder has no mapped value"
	ErrMsgUnknownLanguage    = "unknown language"
	ErrMsgTemplateFormat     = "invalid template format"
)

// Error codes
const (
	ErrCodeTemplateFormat     = "WX_TEMPLATE_FORMAT"
	ErrCodeMissingPlaceholder = "WX_MISSING_PLACEHOLDER"
	ErrCodeLanguage           = "WX_LANGUAGE"
)

// Metadata keys attached to errors
const (
	MetaKeyTemplate    = "template"
	MetaKeyReason      = "reason"
	MetaKeyPlaceholder = "placeholder"
	MetaKeyLanguage    = "language"
)

var (
	// ErrTemplateFormat is wrapped by every template format error.
	ErrTemplateFormat = errors.New(ErrMsgTemplateFormat)
	// ErrMissingPlaceholder is wrapped by strict-mode substitution failures.
	ErrMissingPlaceholder = errors.New(ErrMsgMissingPlaceholder)
)

// NewTemplateFormatError reports a structurally invalid template.
func NewTemplateFormatError(name, reason string) error {
	return cuserr.WrapStdError(ErrTemplateFormat, ErrCodeTemplateFormat, reason).
		WithMetadata(MetaKeyTemplate, name).
		WithMetadata(MetaKeyReason, reason)
}

// NewMissingPlaceholderError reports placeholders left unresolved in strict mode.
func NewMissingPlaceholderError(names []string) error {
	return cuserr.WrapStdError(ErrMissingPlaceholder, ErrCodeMissingPlaceholder, ErrMsgMissingPlaceholder).
		WithMetadata(MetaKeyPlaceholder, strings.Join(names, ","))
}

// NewUnknownLanguageError reports a language code outside zh/pt/en.
func NewUnknownLanguageError(code string) error {
	return cuserr.NewValidationError(ErrCodeLanguage, ErrMsgUnknownLanguage).
		WithMetadata(MetaKeyLanguage, code)
}

func IsTemplateFormatError(err error) bool { return errors.Is(err, ErrTemplateFormat) }

func IsMissingPlaceholderError(err error) bool { return errors.Is(err, ErrMissingPlaceholder) }
