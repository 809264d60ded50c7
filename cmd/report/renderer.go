package report

import (
	"strings"

	"go.uber.org/zap"
)

// Log messages
const (
	LogMsgRenderStart   = "rendering report"
	LogMsgRenderDone    = "report rendered"
	LogMsgItemSkipped   = "template has no forecast item section, forecasts left empty"
	LogMsgItemNoFields  = "forecast item template contains no placeholders"
	LogMsgRenderFailed  = "render failed"
	LogFieldLanguage    = "language"
	LogFieldForecasts   = "forecasts"
	LogFieldStrict      = "strict"
	LogFieldOutputBytes = "output_bytes"
)

// Renderer turns a DocumentContext and a TemplateDocument into markdown.
// It holds no per-render state and may be reused.
type Renderer struct {
	strict   bool
	defaults map[Language]TemplateDocument
	logger   *zap.Logger
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	config := defaultRendererConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renderer{
		strict:   config.strict,
		defaults: config.defaults,
		logger:   logger,
	}
}

// Strict reports whether unmapped placeholders fail the render.
func (r *Renderer) Strict() bool { return r.strict }

// Render expands doc.Item once per forecast, then substitutes the document
// fields and the forecasts block into doc.Main in one pass. The forecasts
// block is inserted as an opaque value, so placeholder-like text inside it or
// inside any other value is never expanded.
func (r *Renderer) Render(dc DocumentContext, doc TemplateDocument) (string, error) {
	r.logger.Debug(LogMsgRenderStart,
		zap.String(LogFieldLanguage, dc.Language.String()),
		zap.Int(LogFieldForecasts, len(dc.Forecasts)),
		zap.Bool(LogFieldStrict, r.strict))

	forecasts, err := r.renderForecasts(dc.Forecasts, doc)
	if err != nil {
		r.logger.Warn(LogMsgRenderFailed, zap.Error(err))
		return "", err
	}

	out, err := Substitute(doc.Main, dc.values(forecasts), r.strict)
	if err != nil {
		r.logger.Warn(LogMsgRenderFailed, zap.Error(err))
		return "", err
	}

	r.logger.Debug(LogMsgRenderDone, zap.Int(LogFieldOutputBytes, len(out)))
	return out, nil
}

// RenderDefault renders with the default template registered for dc.Language.
func (r *Renderer) RenderDefault(dc DocumentContext) (string, error) {
	doc, ok := r.defaults[dc.Language]
	if !ok {
		return "", NewTemplateFormatError(dc.Language.String(), ErrMsgNoDefaultTemplate)
	}
	return r.Render(dc, doc)
}

func (r *Renderer) renderForecasts(entries []ForecastEntry, doc TemplateDocument) (string, error) {
	if !doc.HasItem {
		r.logger.Debug(LogMsgItemSkipped)
		return "", nil
	}
	if !hasPlaceholders(doc.Item) {
		r.logger.Debug(LogMsgItemNoFields)
	}

	var b strings.Builder
	for _, entry := range entries {
		item, err := Substitute(doc.Item, entry.values(), r.strict)
		if err != nil {
			return "", err
		}
		b.WriteString(item)
	}
	return b.String(), nil
}
