package commands

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/erraggy/oaspostman/internal/cliutil"
	"github.com/erraggy/oaspostman/internal/envutil"
	"github.com/erraggy/oaspostman/patcher"
)

// EnvPatchWorkers supplies the default for --workers.
const EnvPatchWorkers = "OASPOSTMAN_PATCH_WORKERS"

// PatchFlags contains flags for the patch command
type PatchFlags struct {
	DryRun     bool
	Extensions []string
	Lookahead  int
	Workers    int
	Format     string
}

func newPatchCommand(a *app) *cobra.Command {
	flags := &PatchFlags{}
	cmd := &cobra.Command{
		Use:   "patch <dir>...",
		Short: "Switch GetAsync lookups to GetTrackedAsync where the entity is updated or deleted",
		Long: `Scan C# sources for statements of the form

  var x = await repo.GetAsync(...);

and rewrite them to GetTrackedAsync when x is passed to .Update(x) or .Delete(x)
within the following --lookahead characters. Files that cannot be read or
written are reported and skipped.`,
		Example: `  oaspostman patch Business/Handlers Business/Services
  oaspostman patch --dry-run Business/Handlers`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(cmd, a, flags, args)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report fixes without writing files")
	fs.StringSliceVar(&flags.Extensions, "ext", patcher.DefaultExtensions, "file extensions to scan")
	fs.IntVar(&flags.Lookahead, "lookahead", patcher.DefaultLookahead, "characters after a lookup searched for .Update/.Delete")
	fs.IntVar(&flags.Workers, "workers", envutil.Int(EnvPatchWorkers, runtime.GOMAXPROCS(0)), "files processed concurrently (env "+EnvPatchWorkers+")")
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	return cmd
}

type patchSummary struct {
	DryRun       bool             `json:"dry_run" yaml:"dry_run"`
	FilesScanned int              `json:"files_scanned" yaml:"files_scanned"`
	FixCount     int              `json:"fix_count" yaml:"fix_count"`
	Files        []patchedSummary `json:"files,omitempty" yaml:"files,omitempty"`
	Errors       []string         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type patchedSummary struct {
	Path      string   `json:"path" yaml:"path"`
	Variables []string `json:"variables" yaml:"variables"`
}

func runPatch(cmd *cobra.Command, a *app, flags *PatchFlags, roots []string) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result, err := patcher.PatchWithOptions(
		patcher.WithRoots(roots...),
		patcher.WithExtensions(flags.Extensions...),
		patcher.WithDryRun(flags.DryRun),
		patcher.WithLookahead(flags.Lookahead),
		patcher.WithWorkers(flags.Workers),
		patcher.WithLogger(a.log()),
		patcher.WithContext(commandContext(cmd)),
	)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		s := patchSummary{
			DryRun:       result.DryRun,
			FilesScanned: result.FilesScanned,
			FixCount:     result.FixCount,
		}
		for _, f := range result.Files {
			s.Files = append(s.Files, patchedSummary{Path: f.Path, Variables: f.Variables()})
		}
		for _, e := range result.Errors {
			s.Errors = append(s.Errors, e.Error())
		}
		return OutputStructured(cmd.OutOrStdout(), s, flags.Format)
	}

	printPatchSummary(cmd.OutOrStdout(), cmd.ErrOrStderr(), roots, result)
	return nil
}

func printPatchSummary(out, errOut io.Writer, roots []string, result *patcher.PatchResult) {
	cliutil.Writef(out, "Scanning %d %s for GetAsync -> Update/Delete patterns...\n", len(roots), cliutil.Plural(len(roots), "directory", "directories"))
	for _, f := range result.Files {
		for _, fix := range f.Fixes {
			cliutil.Writef(out, "Fixed in %s: %s\n", f.Path, fix.Variable)
		}
	}
	for _, e := range result.Errors {
		cliutil.Writef(errOut, "Error: %v\n", e)
	}

	cliutil.Writef(out, "\nFixed %d %s:\n", len(result.Files), cliutil.Plural(len(result.Files), "file", "files"))
	for _, f := range result.Files {
		cliutil.Writef(out, "  - %s\n", f.Path)
	}
	if result.DryRun {
		cliutil.Writef(out, "\n(dry run: no files were written)\n")
	}
	cliutil.Writef(out, "\n=== TOTAL: %d files fixed (%d scanned) ===\n", len(result.Files), result.FilesScanned)
}
