package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/kalibox/kalibox/internal/config"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command
func NewUninstallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Tear down the environment and delete all sandbox files",
		Long: `Uninstall tears down the environment's containers, network, and volumes,
then deletes both the project directory and the persistent data directory.
This is irreversible and only ever runs on explicit request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Uninstall(cmd.Context())
		},
	}
}

// Uninstall tears down the environment with volumes, then removes both
// directories. A never-scaffolded project is not an error.
func (a *App) Uninstall(ctx context.Context) error {
	if err := a.checkPrivilege(); err != nil {
		return err
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.ProjectDir); os.IsNotExist(err) {
		a.infof("No sandbox project found at %s, nothing to uninstall.", a.styles.Path.Render(cfg.ProjectDir))
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

	// Containers, network, and volumes go first; directory removal only
	// happens once the orchestrator has released everything.
	if err := a.newOrchestrator(runtime, composeCmd, cfg.ProjectDir).Down(ctx, true); err != nil {
		return err
	}

	for _, dir := range []string{cfg.ProjectDir, cfg.DataDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}

	a.successf("Sandbox uninstalled. Removed %s and %s.",
		a.styles.Path.Render(cfg.ProjectDir), a.styles.Path.Render(cfg.DataDir))
	return nil
}
