package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/erraggy/oaspostman/internal/envutil"
	"github.com/erraggy/oaspostman/internal/httpserver"
	"github.com/erraggy/oaspostman/postman"
)

// EnvServeMaxBody supplies the default for --max-body.
const EnvServeMaxBody = "OASPOSTMAN_SERVE_MAX_BODY"

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr        string
	MaxBodySize int64
	BaseURL     string
	APIVersion  string
}

func newServeCommand(a *app) *cobra.Command {
	flags := &ServeFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: `Start an HTTP server exposing:

  POST /v1/collections   body: Swagger/OpenAPI document; query: name, base_url, version, validate
  GET  /healthz
  GET  /metrics          Prometheus metrics`,
		Example: `  oaspostman serve --addr :8080
  curl --data-binary @swagger.json localhost:8080/v1/collections?name=Plants`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := httpserver.New(httpserver.Config{
				MaxBodySize: flags.MaxBodySize,
				BaseURL:     flags.BaseURL,
				APIVersion:  flags.APIVersion,
				Logger:      a.log(),
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, flags.Addr)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.Addr, "addr", ":8080", "listen address")
	fs.Int64Var(&flags.MaxBodySize, "max-body", envutil.Int64(EnvServeMaxBody, httpserver.DefaultMaxBodySize), "maximum document size in bytes (env "+EnvServeMaxBody+")")
	fs.StringVar(&flags.BaseURL, "base-url", envutil.String(EnvBaseURL, postman.DefaultBaseURL), "default base_url variable (env "+EnvBaseURL+")")
	fs.StringVar(&flags.APIVersion, "api-version", envutil.String(EnvAPIVersion, postman.DefaultAPIVersion), "default version variable (env "+EnvAPIVersion+")")
	return cmd
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
