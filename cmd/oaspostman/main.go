// Command oaspostman converts Swagger/OpenAPI documents into Postman v2.1
// collections and patches untracked repository lookups in C# sources.
package main

import (
	"os"

	"github.com/erraggy/oaspostman/cmd/oaspostman/commands"
	"github.com/erraggy/oaspostman/internal/cliutil"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
