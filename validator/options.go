package validator

import (
	"context"

	"github.com/erraggy/oaspostman/internal/options"
	"github.com/erraggy/oaspostman/parser"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.Document

	ctx             context.Context
	includeWarnings bool
	strictMode      bool
	userAgent       string
	logger          parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		ctx:             context.Background(),
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"validator", "WithFilePath or WithParsed",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(doc *parser.Document) Option {
	return func(cfg *validateConfig) error {
		cfg.parsed = doc
		return nil
	}
}

// WithContext sets the context passed to kin-openapi
// Default: context.Background()
func WithContext(ctx context.Context) Option {
	return func(cfg *validateConfig) error {
		if ctx != nil {
			cfg.ctx = ctx
		}
		return nil
	}
}

// WithIncludeWarnings enables or disables conversion warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode enables validation of schema examples
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
func WithUserAgent(ua string) Option {
	return func(cfg *validateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger for validation diagnostics
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
