package cli

import (
	"context"
	"os"

	"github.com/kalibox/kalibox/internal/config"
	"github.com/spf13/cobra"
)

// NewStopCmd creates the stop command
func NewStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the sandbox environment",
		Long: `Stop brings the environment down, removing its containers and isolated
network. The persistent data directory is never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Stop(cmd.Context())
		},
	}
}

// Stop brings the environment down. A never-scaffolded project is not an
// error.
func (a *App) Stop(ctx context.Context) error {
	if err := a.checkPrivilege(); err != nil {
		return err
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.ManifestPath()); os.IsNotExist(err) {
		a.infof("No sandbox project found at %s, nothing to stop.", a.styles.Path.Render(cfg.ProjectDir))
		return nil
	}

	runtime, err := a.detectRuntime()
	if err != nil {
		return err
	}
	composeCmd, err := a.detectCompose(runtime)
	if err != nil {
		return err
	}

	if err := a.newOrchestrator(runtime, composeCmd, cfg.ProjectDir).Down(ctx, false); err != nil {
		return err
	}

	a.successf("Environment stopped. Data in %s is kept.", a.styles.Path.Render(cfg.DataDir))
	return nil
}
