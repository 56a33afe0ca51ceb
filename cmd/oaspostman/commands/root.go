// Package commands provides the cobra command tree for oaspostman.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erraggy/oaspostman"
	"github.com/erraggy/oaspostman/parser"
)

// app carries state shared by all commands of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// log returns the invocation's logger, or a no-op logger before
// PersistentPreRunE has run.
func (a *app) log() parser.Logger {
	if a.logger == nil {
		return parser.NopLogger{}
	}
	return NewZapAdapter(a.logger)
}

// NewRootCommand builds the oaspostman command tree. Running the root command
// without a subcommand converts swagger.json with default settings.
func NewRootCommand() *cobra.Command {
	a := &app{}
	convertFlags := &ConvertFlags{}

	root := &cobra.Command{
		Use:   "oaspostman",
		Short: "Convert Swagger/OpenAPI documents into Postman v2.1 collections",
		Long: `oaspostman converts a Swagger 2.0 or OpenAPI 3.x document into a Postman
Collection v2.1 with one folder per tag, bearer auth, token capture scripts and
collection variables for the base URL and API version.

Run without arguments to convert ./swagger.json into
./collection.postman_collection.json.`,
		Version:       oaspostman.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, a, convertFlags, nil)
		},
	}
	root.SetVersionTemplate("oaspostman v{{.Version}}\n")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	bindConvertFlags(root, convertFlags)

	root.AddCommand(
		newConvertCommand(a),
		newPatchCommand(a),
		newServeCommand(a),
		newMCPCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), oaspostman.BuildInfo())
		},
	}
}
