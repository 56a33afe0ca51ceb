package converter

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oaspostman/internal/options"
	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/parser"
	"github.com/erraggy/oaspostman/postman"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input sources (exactly one must be set)
	filePath *string
	parsed   *parser.Document
	reader   io.Reader
	bytes    []byte

	sourceName     string
	collectionID   string
	collectionName string
	deriveName     bool
	description    string
	baseURL        string
	apiVersion     string
	pathVariables  []string
	bearerSchemes  []string
	includeInfo    bool
	validate       bool
	userAgent      string
	maxFileSize    int64
	logger         parser.Logger
}

// ConvertWithOptions converts a document using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("swagger.json"),
//	    converter.WithCollectionName("Plant API"),
//	    converter.WithPathVariables("plantId"),
//	)
func ConvertWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		CollectionID:   cfg.collectionID,
		CollectionName: cfg.collectionName,
		DeriveName:     cfg.deriveName,
		Description:    cfg.description,
		BaseURL:        cfg.baseURL,
		APIVersion:     cfg.apiVersion,
		PathVariables:  cfg.pathVariables,
		BearerSchemes:  cfg.bearerSchemes,
		IncludeInfo:    cfg.includeInfo,
		Validate:       cfg.validate,
		UserAgent:      cfg.userAgent,
		MaxFileSize:    cfg.maxFileSize,
		Logger:         cfg.logger,
	}

	if cfg.filePath != nil {
		return c.Convert(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return c.ConvertParsed(cfg.parsed)
	}

	parseOpts := []parser.Option{
		parser.WithMaxFileSize(cfg.maxFileSize),
		parser.WithLogger(cfg.logger),
	}
	if cfg.sourceName != "" {
		parseOpts = append(parseOpts, parser.WithSourceName(cfg.sourceName))
	}
	if cfg.reader != nil {
		parseOpts = append(parseOpts, parser.WithReader(cfg.reader))
	} else {
		parseOpts = append(parseOpts, parser.WithBytes(cfg.bytes))
	}
	doc, err := parser.ParseWithOptions(parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to parse specification: %w", err)
	}
	return c.ConvertParsed(doc)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		baseURL:     postman.DefaultBaseURL,
		apiVersion:  postman.DefaultAPIVersion,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"converter", "WithFilePath, WithParsed, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.parsed != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(doc *parser.Document) Option {
	return func(cfg *convertConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "parsed", Message: "document must not be nil"}
		}
		cfg.parsed = doc
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader must not be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName labels reader and byte inputs, e.g. "<stdin>"
func WithSourceName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithCollectionID sets the collection _postman_id
// Default: a random UUID
func WithCollectionID(id string) Option {
	return func(cfg *convertConfig) error {
		cfg.collectionID = id
		return nil
	}
}

// WithCollectionName sets the collection name
// Default: postman.DefaultName
func WithCollectionName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.collectionName = name
		return nil
	}
}

// WithDerivedName names the collection after info.title, falling back to the
// title-cased source file name, when no explicit name is given
// Default: false
func WithDerivedName(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.deriveName = enabled
		return nil
	}
}

// WithDescription sets the collection description
// Default: postman.DefaultDescription
func WithDescription(description string) Option {
	return func(cfg *convertConfig) error {
		cfg.description = description
		return nil
	}
}

// WithBaseURL sets the base_url collection variable
// Default: postman.DefaultBaseURL
func WithBaseURL(baseURL string) Option {
	return func(cfg *convertConfig) error {
		if strings.TrimSpace(baseURL) == "" {
			return &oaserrors.ConfigError{Option: "base_url", Value: baseURL, Message: "must not be empty"}
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithAPIVersion sets the version collection variable
// Default: postman.DefaultAPIVersion
func WithAPIVersion(version string) Option {
	return func(cfg *convertConfig) error {
		if strings.TrimSpace(version) == "" {
			return &oaserrors.ConfigError{Option: "api_version", Value: version, Message: "must not be empty"}
		}
		cfg.apiVersion = version
		return nil
	}
}

// WithPathVariables adds path parameter names rewritten to {{name}} form.
// The defaults (id, code, userId, analysisId) always apply.
func WithPathVariables(names ...string) Option {
	return func(cfg *convertConfig) error {
		for _, n := range names {
			if strings.ContainsAny(n, "{}/") {
				return &oaserrors.ConfigError{Option: "path_variables", Value: n, Message: "must be a bare parameter name"}
			}
		}
		cfg.pathVariables = append(cfg.pathVariables, names...)
		return nil
	}
}

// WithBearerSchemes sets the security scheme names that count as bearer auth
// Default: DefaultBearerSchemes
func WithBearerSchemes(names ...string) Option {
	return func(cfg *convertConfig) error {
		cfg.bearerSchemes = names
		return nil
	}
}

// WithIncludeInfo enables or disables informational issues
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithValidate runs structural validation before converting
// Default: false
func WithValidate(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.validate = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
func WithUserAgent(ua string) Option {
	return func(cfg *convertConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithMaxFileSize caps the input size in bytes
// Default: parser.DefaultMaxFileSize
func WithMaxFileSize(n int64) Option {
	return func(cfg *convertConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "max_file_size", Value: n, Message: "must not be negative"}
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithLogger sets the logger for conversion diagnostics
func WithLogger(l parser.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
