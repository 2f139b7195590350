// Package main is the entry point for the uiguide CLI.
package main

import (
	"os"

	"github.com/yaklabco/uiguide/internal/cli"
	"github.com/yaklabco/uiguide/internal/logging"

	// Import rules package to register built-in checks via init().
	_ "github.com/yaklabco/uiguide/pkg/check/rules"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.Execute()
	if cli.ShouldLog(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
