package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kalibox/kalibox/internal/cli"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New()
	app.SetVersion(version, commit, date)

	if err := app.Execute(); err != nil {
		// A bare exec error means `kalibox access` ended with a non-zero
		// shell; its exit status passes through untouched and the runtime
		// has already printed any diagnostic.
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
