package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspostman/patcher"
)

type patchInput struct {
	Roots      []string `json:"roots"                jsonschema:"Directories to scan recursively"`
	Extensions []string `json:"extensions,omitempty" jsonschema:"File extensions to scan (default .cs)"`
	DryRun     bool     `json:"dry_run,omitempty"    jsonschema:"Report fixes without writing files"`
	Lookahead  int      `json:"lookahead,omitempty"  jsonschema:"Characters after each lookup searched for .Update/.Delete (default 500)"`
}

type patchedFile struct {
	Path      string   `json:"path"`
	Variables []string `json:"variables"`
}

type patchOutput struct {
	FilesScanned int           `json:"files_scanned"`
	FilesFixed   int           `json:"files_fixed"`
	FixCount     int           `json:"fix_count"`
	DryRun       bool          `json:"dry_run"`
	Files        []patchedFile `json:"files,omitempty"`
	Errors       []string      `json:"errors,omitempty"`
}

func handlePatch(ctx context.Context, _ *mcp.CallToolRequest, input patchInput) (*mcp.CallToolResult, patchOutput, error) {
	if len(input.Roots) == 0 {
		return errResult(fmt.Errorf("at least one root is required")), patchOutput{}, nil
	}

	lookahead := input.Lookahead
	if lookahead <= 0 {
		lookahead = cfg.PatchLookahead
	}
	opts := []patcher.Option{
		patcher.WithRoots(input.Roots...),
		patcher.WithDryRun(input.DryRun),
		patcher.WithLookahead(lookahead),
		patcher.WithWorkers(cfg.PatchWorkers),
		patcher.WithContext(ctx),
	}
	if len(input.Extensions) > 0 {
		opts = append(opts, patcher.WithExtensions(input.Extensions...))
	}

	result, err := patcher.PatchWithOptions(opts...)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	output := patchOutput{
		FilesScanned: result.FilesScanned,
		FilesFixed:   len(result.Files),
		FixCount:     result.FixCount,
		DryRun:       result.DryRun,
	}
	output.Files = makeSlice[patchedFile](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, patchedFile{Path: f.Path, Variables: f.Variables()})
	}
	output.Errors = makeSlice[string](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, sanitizeError(e))
	}
	return nil, output, nil
}
