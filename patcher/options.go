package patcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/parser"
)

// Option is a function that configures a patch operation
type Option func(*patchConfig) error

type patchConfig struct {
	roots      []string
	extensions []string
	dryRun     bool
	lookahead  int
	workers    int
	logger     parser.Logger
	ctx        context.Context
}

// PatchWithOptions patches files using functional options.
//
// Example:
//
//	result, err := patcher.PatchWithOptions(
//	    patcher.WithRoots("Business/Handlers"),
//	    patcher.WithWorkers(4),
//	)
func PatchWithOptions(opts ...Option) (*PatchResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("patcher: invalid options: %w", err)
	}

	p := &Patcher{
		Extensions: cfg.extensions,
		DryRun:     cfg.dryRun,
		Lookahead:  cfg.lookahead,
		Workers:    cfg.workers,
		Logger:     cfg.logger,
	}
	return p.Patch(cfg.ctx, cfg.roots...)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*patchConfig, error) {
	cfg := &patchConfig{
		lookahead: DefaultLookahead,
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if len(cfg.roots) == 0 {
		return nil, &oaserrors.ConfigError{Option: "roots", Message: "must specify at least one root (use WithRoots)"}
	}
	return cfg, nil
}

// WithRoots adds directories to scan
func WithRoots(roots ...string) Option {
	return func(cfg *patchConfig) error {
		for _, r := range roots {
			if strings.TrimSpace(r) == "" {
				return &oaserrors.ConfigError{Option: "roots", Value: r, Message: "root must not be empty"}
			}
		}
		cfg.roots = append(cfg.roots, roots...)
		return nil
	}
}

// WithExtensions sets the file extensions to scan, e.g. ".cs"
// Default: DefaultExtensions
func WithExtensions(exts ...string) Option {
	return func(cfg *patchConfig) error {
		for _, e := range exts {
			if !strings.HasPrefix(e, ".") {
				return &oaserrors.ConfigError{Option: "extensions", Value: e, Message: "extension must start with '.'"}
			}
		}
		cfg.extensions = exts
		return nil
	}
}

// WithDryRun reports fixes without writing files
// Default: false
func WithDryRun(enabled bool) Option {
	return func(cfg *patchConfig) error {
		cfg.dryRun = enabled
		return nil
	}
}

// WithLookahead sets the search window in characters
// Default: DefaultLookahead
func WithLookahead(n int) Option {
	return func(cfg *patchConfig) error {
		if n <= 0 {
			return &oaserrors.ConfigError{Option: "lookahead", Value: n, Message: "must be positive"}
		}
		cfg.lookahead = n
		return nil
	}
}

// WithWorkers bounds concurrent file processing
// Default: GOMAXPROCS
func WithWorkers(n int) Option {
	return func(cfg *patchConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "workers", Value: n, Message: "must not be negative"}
		}
		cfg.workers = n
		return nil
	}
}

// WithLogger sets the logger for patch diagnostics
func WithLogger(l parser.Logger) Option {
	return func(cfg *patchConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithContext sets the context that cancels the run
// Default: context.Background()
func WithContext(ctx context.Context) Option {
	return func(cfg *patchConfig) error {
		if ctx != nil {
			cfg.ctx = ctx
		}
		return nil
	}
}
