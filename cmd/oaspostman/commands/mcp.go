package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/erraggy/oaspostman/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server over stdin/stdout exposing the convert,
validate and patch tools. Defaults are read from OASPOSTMAN_* environment
variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
			defer stop()
			return mcpserver.Run(ctx)
		},
	}
}
