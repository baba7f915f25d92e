package cli

import (
	"context"

	"github.com/kalibox/kalibox/internal/config"
	"github.com/spf13/cobra"
)

// NewAccessCmd creates the access command
func NewAccessCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "access",
		Short: "Open an interactive shell inside the running environment",
		Long: `Access execs an interactive bash shell inside the running environment via
the container runtime directly. There is no liveness pre-check; if the
environment is not running, the runtime's own diagnostic is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Access(cmd.Context())
		},
	}
}

// Access attaches an interactive shell to the environment. The underlying
// exec's exit status propagates to the caller.
func (a *App) Access(ctx context.Context) error {
	if err := a.checkPrivilege(); err != nil {
		return err
	}

	// Paths are resolved for consistency with the other subcommands; only
	// the runtime matters here.
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	runtime, err := a.detectRuntime()
	if err != nil {
		return err
	}
	composeCmd, err := a.detectCompose(runtime)
	if err != nil {
		return err
	}

	return a.newOrchestrator(runtime, composeCmd, cfg.ProjectDir).ExecShell(ctx, config.EnvironmentName)
}
