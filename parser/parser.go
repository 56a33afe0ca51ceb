package parser

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/erraggy/oaspostman/oaserrors"
)

// DefaultMaxFileSize caps inputs at 64 MiB unless configured otherwise.
const DefaultMaxFileSize int64 = 64 << 20

// Parser reads Swagger/OpenAPI documents into a Document.
type Parser struct {
	// Logger receives debug output; nil means no logging
	Logger Logger
	// MaxFileSize caps the input size in bytes; 0 means DefaultMaxFileSize
	MaxFileSize int64
	// UserAgent is sent when fetching URLs; defaults to oaspostman.UserAgent()
	UserAgent string
	// HTTPClient fetches URLs; defaults to a client with a 30s timeout
	HTTPClient *http.Client
	// SourceName labels reader and byte inputs in results and errors
	SourceName string
}

// New creates a new Parser with default settings
func New() *Parser {
	return &Parser{}
}

func (p *Parser) log() Logger {
	return LoggerOrNop(p.Logger)
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// Parse reads a document from a file path or an http(s) URL.
func (p *Parser) Parse(specPath string) (*Document, error) {
	var (
		data   []byte
		format SourceFormat
		err    error
	)

	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = p.readFile(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromPath(specPath)
	}

	return p.parse(data, specPath, format)
}

// ParseReader reads a document from r. The format is detected from content.
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	data, err := p.readLimited(r)
	if err != nil {
		return nil, err
	}
	return p.parse(data, p.sourceName("<reader>"), SourceFormatUnknown)
}

// ParseBytes reads a document from data. The format is detected from content.
func (p *Parser) ParseBytes(data []byte) (*Document, error) {
	if limit := p.maxFileSize(); int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       int64(len(data)),
		}
	}
	return p.parse(data, p.sourceName("<bytes>"), SourceFormatUnknown)
}

func (p *Parser) sourceName(fallback string) string {
	if p.SourceName != "" {
		return p.SourceName
	}
	return fallback
}

func (p *Parser) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if limit := p.maxFileSize(); info.Size() > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       info.Size(),
			Message:      path,
		}
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided CLI input
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return data, nil
}

func (p *Parser) parse(data []byte, source string, format SourceFormat) (*Document, error) {
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	log := p.log().With("source", source)

	var (
		root node
		err  error
	)
	switch format {
	case SourceFormatJSON:
		root, err = decodeJSON(data)
	case SourceFormatYAML:
		root, err = decodeYAML(data)
	default:
		return nil, &oaserrors.ParseError{Path: source, Message: "empty document"}
	}
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("invalid %s", format),
			Cause:   err,
		}
	}

	b := &builder{source: source, log: log}
	doc, err := b.build(root)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = source
	doc.SourceFormat = format
	doc.SourceSize = int64(len(data))
	doc.raw = data

	stats := doc.Stats()
	log.Debug("parsed document",
		"format", string(format),
		"version", doc.Version,
		"paths", stats.PathCount,
		"operations", stats.OperationCount,
	)
	return doc, nil
}
