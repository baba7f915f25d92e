package cli

import (
	"context"
	"os"

	"github.com/kalibox/kalibox/internal/config"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the environment's container status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Status(cmd.Context())
		},
	}
}

// Status shows the compose status of the environment.
func (a *App) Status(ctx context.Context) error {
	if err := a.checkPrivilege(); err != nil {
		return err
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.ManifestPath()); os.IsNotExist(err) {
		a.infof("No sandbox project found at %s.", a.styles.Path.Render(cfg.ProjectDir))
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

	return a.newOrchestrator(runtime, composeCmd, cfg.ProjectDir).Status(ctx)
}
