package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/oaspostman/internal/options"
	"github.com/erraggy/oaspostman/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxFileSize int64
	userAgent   string
	httpClient  *http.Client

	// Overrides SourcePath in the result
	sourceName *string
}

// ParseWithOptions parses a document using functional options.
//
// Example:
//
//	doc, err := parser.ParseWithOptions(
//	    parser.WithFilePath("swagger.json"),
//	    parser.WithMaxFileSize(8 << 20),
//	)
func ParseWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:      cfg.logger,
		MaxFileSize: cfg.maxFileSize,
		UserAgent:   cfg.userAgent,
		HTTPClient:  cfg.httpClient,
	}
	if cfg.sourceName != nil {
		p.SourceName = *cfg.sourceName
	}

	var doc *Document
	switch {
	case cfg.filePath != nil:
		doc, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		doc, err = p.ParseReader(cfg.reader)
	default:
		doc, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		doc.SourcePath = *cfg.sourceName
	}
	return doc, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"parser", "WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader must not be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger for parse diagnostics
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize caps the input size in bytes (0 keeps the default)
func WithMaxFileSize(n int64) Option {
	return func(cfg *parseConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "max_file_size", Value: n, Message: "must not be negative"}
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithUserAgent sets the User-Agent used when the input is a URL
func WithUserAgent(ua string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets the client used when the input is a URL
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithSourceName overrides the SourcePath reported in the result, e.g. "<stdin>".
// For reader and byte inputs it also labels parse errors.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
