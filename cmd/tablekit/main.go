// Command tablekit renders YAML and JSON record files as paginated tables.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/rshade/tablekit/internal/cli"
	"github.com/rshade/tablekit/pkg/version"
)

// exitInterrupted is the conventional exit status after SIGINT.
const exitInterrupted = 130

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// exitCode maps the error returned by run to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return 1
	}
}
