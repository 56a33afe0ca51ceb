package parser

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/oaspostman"
	"github.com/erraggy/oaspostman/oaserrors"
)

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file extension
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent treats input starting with '{' or '[' as JSON and
// anything else as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL tries the URL path extension first, then the Content-Type header
func detectFormatFromURL(urlStr string, contentType string) SourceFormat {
	if parsed, err := url.Parse(urlStr); err == nil && parsed.Path != "" {
		if format := detectFormatFromPath(parsed.Path); format != SourceFormatUnknown {
			return format
		}
	}

	contentType = strings.ToLower(contentType)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	switch strings.TrimSpace(contentType) {
	case "application/json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL fetches a document and returns its bytes and Content-Type header
func (p *Parser) fetchURL(urlStr string) ([]byte, string, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to create request: %w", err)
	}
	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = oaspostman.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req) //nolint:gosec // URL is user-provided CLI input
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := p.readLimited(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// readLimited reads r up to the configured size limit.
func (p *Parser) readLimited(r io.Reader) ([]byte, error) {
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read input: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      "input exceeds maximum size",
		}
	}
	return data, nil
}
