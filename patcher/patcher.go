package patcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oaspostman/internal/fileutil"
	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/parser"
)

// DefaultExtensions are the file extensions scanned when none are configured.
var DefaultExtensions = []string{".cs"}

// FileResult describes one file that contained qualifying lookups.
type FileResult struct {
	// Path is the file path as found while walking the roots
	Path string
	// Fixes lists the rewritten statements in source order
	Fixes []Fix
	// Written is true when the file was rewritten on disk (false in dry run)
	Written bool
}

// Variables returns the fixed variable names in source order.
func (f FileResult) Variables() []string {
	names := make([]string, len(f.Fixes))
	for i, fix := range f.Fixes {
		names[i] = fix.Variable
	}
	return names
}

// PatchResult contains the results of a patch run
type PatchResult struct {
	// Files lists the patched files sorted by path
	Files []FileResult
	// Errors holds one *oaserrors.PatchError per file or root that failed
	Errors []error
	// FilesScanned is the number of files with a matching extension
	FilesScanned int
	// FixCount is the total number of rewritten statements
	FixCount int
	// DryRun is true when no files were written
	DryRun bool
}

// Patcher rewrites lookups under one or more directory trees
type Patcher struct {
	// Extensions limits the files scanned; DefaultExtensions when empty
	Extensions []string
	// DryRun reports fixes without writing files
	DryRun bool
	// Lookahead is the search window in characters; DefaultLookahead when 0
	Lookahead int
	// Workers bounds concurrent file processing; GOMAXPROCS when 0
	Workers int
	// Logger receives debug output; nil means no logging
	Logger parser.Logger
}

// New creates a new Patcher instance with default settings
func New() *Patcher {
	return &Patcher{}
}

// Patch walks each root and rewrites qualifying files. It only returns an
// error when ctx is cancelled; per-file failures are reported in the result.
func (p *Patcher) Patch(ctx context.Context, roots ...string) (*PatchResult, error) {
	log := parser.LoggerOrNop(p.Logger)
	result := &PatchResult{DryRun: p.DryRun}

	var mu sync.Mutex
	addError := func(err error) {
		mu.Lock()
		result.Errors = append(result.Errors, err)
		mu.Unlock()
	}

	files := p.collect(roots, addError)
	result.FilesScanned = len(files)
	log.Debug("collected files", "roots", len(roots), "files", len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for _, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fr, err := p.patchFile(path)
			if err != nil {
				log.Warn("patch failed", "path", path, "error", err)
				addError(err)
				return nil
			}
			if fr == nil {
				return nil
			}
			mu.Lock()
			result.Files = append(result.Files, *fr)
			result.FixCount += len(fr.Fixes)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("patcher: %w", err)
	}

	slices.SortFunc(result.Files, func(a, b FileResult) int {
		return strings.Compare(a.Path, b.Path)
	})
	slices.SortFunc(result.Errors, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return result, nil
}

// collect returns the files under roots with a configured extension, sorted.
func (p *Patcher) collect(roots []string, addError func(error)) []string {
	exts := p.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				addError(&oaserrors.PatchError{Path: path, Op: "walk", Cause: err})
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if slices.ContainsFunc(exts, func(ext string) bool { return strings.HasSuffix(d.Name(), ext) }) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			addError(&oaserrors.PatchError{Path: root, Op: "walk", Cause: err})
		}
	}
	slices.Sort(files)
	return slices.Compact(files)
}

// patchFile rewrites a single file. It returns nil when nothing changed.
func (p *Patcher) patchFile(path string) (*FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &oaserrors.PatchError{Path: path, Op: "stat", Cause: err}
	}
	data, err := os.ReadFile(path) //nolint:gosec // paths come from walking user-provided roots
	if err != nil {
		return nil, &oaserrors.PatchError{Path: path, Op: "read", Cause: err}
	}
	if !utf8.Valid(data) {
		return nil, &oaserrors.PatchError{Path: path, Op: "read", Cause: fmt.Errorf("not valid UTF-8")}
	}

	content := string(data)
	if !Candidate(content) {
		return nil, nil
	}
	patched, fixes := Rewrite(content, p.Lookahead)
	if patched == content {
		return nil, nil
	}

	fr := &FileResult{Path: path, Fixes: fixes}
	if p.DryRun {
		return fr, nil
	}
	perm := info.Mode().Perm()
	if perm == 0 {
		perm = fileutil.ReadableByAll
	}
	if err := fileutil.WriteFileAtomic(path, []byte(patched), perm); err != nil {
		return nil, &oaserrors.PatchError{Path: path, Op: "write", Cause: err}
	}
	fr.Written = true
	return fr, nil
}

func (p *Patcher) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}
