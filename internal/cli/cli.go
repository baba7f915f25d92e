package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kalibox/kalibox/internal/compose"
	"github.com/kalibox/kalibox/internal/config"
	"github.com/kalibox/kalibox/internal/privilege"
	"github.com/spf13/cobra"
)

// errNoCommand distinguishes a bare invocation from an explicit `help`,
// which exits zero.
var errNoCommand = errors.New("no command specified")

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Terminal styling
	styles Styles

	// Shared stdin reader. Prompts must not each wrap os.Stdin in their
	// own bufio.Reader: with piped input the first reader buffers ahead
	// and swallows lines meant for the next prompt.
	stdin *bufio.Reader

	// Collaborators, swappable in tests
	checkPrivilege  func() error
	detectRuntime   func() (string, error)
	detectCompose   func(runtime string) (compose.Command, error)
	newOrchestrator func(runtime string, cmd compose.Command, projectDir string) compose.Orchestrator

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{
		styles:         DefaultStyles(),
		stdin:          bufio.NewReader(os.Stdin),
		checkPrivilege: privilege.Check,
		detectRuntime:  compose.DetectRuntime,
		detectCompose:  compose.DetectCompose,
		newOrchestrator: func(runtime string, cmd compose.Command, projectDir string) compose.Orchestrator {
			return compose.NewClient(runtime, cmd, projectDir)
		},
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	err := a.rootCmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		// An unrecognized subcommand prints usage before the error.
		_ = a.rootCmd.Usage()
	}
	return err
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	long := `Kalibox creates and manages an isolated Kali Linux container environment
for safely running untrusted tools. It generates a Dockerfile, a compose
manifest, and a usage guide, then delegates the environment lifecycle to
docker / docker compose.

Paths can be overridden with KALIBOX_PROJECT_DIR and KALIBOX_DATA_DIR, or
in ~/.kalibox/config.yaml. Defaults: ~/kali_sandbox (project files) and
~/sandbox (persistent data, mounted at /sandbox inside the environment).`

	// Help shows the paths as resolved for this invocation, so an active
	// override is visible. Resolution only reads; help stays effect-free.
	if cfg, err := config.Resolve(); err == nil {
		long += fmt.Sprintf(`

Current paths:
  project files:   %s
  persistent data: %s`, cfg.ProjectDir, cfg.DataDir)
	}

	a.rootCmd = &cobra.Command{
		Use:   "kalibox",
		Short: "Isolated Kali Linux sandbox environment manager",
		Long:  long,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation prints usage but still fails, so scripts
			// notice a missing subcommand.
			_ = cmd.Help()
			return errNoCommand
		},
	}

	a.rootCmd.AddCommand(
		NewStartCmd(a),
		NewStopCmd(a),
		NewAccessCmd(a),
		NewStatusCmd(a),
		NewUninstallCmd(a),
		NewVersionCmd(a),
	)
}
