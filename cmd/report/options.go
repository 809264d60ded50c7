package report

import "go.uber.org/zap"

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	strict   bool
	logger   *zap.Logger
	defaults map[Language]TemplateDocument
}

func defaultRendererConfig() *rendererConfig {
	return &rendererConfig{}
}

// WithStrict makes unmapped placeholders a MissingPlaceholderError instead of
// leaving them in the output.
// Default: false
func WithStrict(strict bool) Option {
	return func(c *rendererConfig) {
		c.strict = strict
	}
}

// WithLogger sets the logger for the renderer.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *rendererConfig) {
		c.logger = logger
	}
}

// WithDefaults sets the per-language templates used by RenderDefault.
func WithDefaults(defaults map[Language]TemplateDocument) Option {
	return func(c *rendererConfig) {
		c.defaults = defaults
	}
}
