// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaspostman capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspostman"
)

const serverInstructions = `oaspostman MCP server: converts Swagger/OpenAPI documents into Postman v2.1 collections, validates them, and patches untracked repository lookups in C# sources.

Configuration: defaults come from OASPOSTMAN_* environment variables set in your MCP client config.

Key settings:
- OASPOSTMAN_BASE_URL (default: https://localhost:5001) - base_url collection variable
- OASPOSTMAN_API_VERSION (default: 1) - version collection variable
- OASPOSTMAN_SERVE_MAX_BODY (default: 10MiB) - maximum inline content size
- OASPOSTMAN_PATCH_WORKERS (default: 4) - files patched concurrently
- OASPOSTMAN_CACHE_ENABLED (default: true) - disable document caching entirely

Caching: parsed documents are cached per session. File entries use path+mtime as key. URL entries are cached with a shorter TTL.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaspostman", Version: oaspostman.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Swagger 2.0 or OpenAPI 3.x document into a Postman v2.1 collection. Operations are grouped into folders by their first tag; path parameters such as {id} become Postman variables. Use output to write the collection to a file instead of returning it inline. Base URL and API version defaults are configurable via OASPOSTMAN_BASE_URL and OASPOSTMAN_API_VERSION.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a Swagger/OpenAPI document structurally and report operations the converter will have to guess about (missing tags, missing names, duplicate operationIds). Use offset/limit to paginate through results.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch",
		Description: "Rewrite `var x = await repo.GetAsync(...)` to GetTrackedAsync when x is passed to .Update(x) or .Delete(x) shortly afterwards, across the .cs files under the given roots. Use dry_run=true to preview the fixes without writing files.",
	}, handlePatch)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
