package cli

import (
	"context"
	"os"

	"github.com/kalibox/kalibox/internal/config"
	"github.com/kalibox/kalibox/internal/scaffold"
	"github.com/spf13/cobra"
)

// NewStartCmd creates the start command
func NewStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Build (if needed) and start the sandbox environment",
		Long: `Start brings the sandbox environment up, building the image first if
necessary. On first use it scaffolds the project directory: a Dockerfile,
a compose manifest, a usage guide, and a copy of this CLI. Existing
generated files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Start(cmd.Context())
		},
	}
}

// Start scaffolds the project on first use and brings the environment up.
func (a *App) Start(ctx context.Context) error {
	if err := a.checkPrivilege(); err != nil {
		return err
	}

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

	if _, err := os.Stat(cfg.ProjectDir); os.IsNotExist(err) {
		chosen, perr := a.promptProjectDir(cfg.ProjectDir, cfg.DataDir)
		if perr != nil {
			return perr
		}
		cfg.ProjectDir = chosen
	}

	if _, err := os.Stat(cfg.ManifestPath()); os.IsNotExist(err) {
		a.infof("Scaffolding sandbox project in %s", a.styles.Path.Render(cfg.ProjectDir))
		if err := scaffold.Scaffold(cfg, composeCmd.String()); err != nil {
			return err
		}
	}

	a.infof("Bringing the environment up; the first build can take several minutes.")
	if err := a.newOrchestrator(runtime, composeCmd, cfg.ProjectDir).Up(ctx); err != nil {
		return err
	}

	a.successf("Environment %s is up. Run `kalibox access` for a shell.", config.EnvironmentName)
	return nil
}
