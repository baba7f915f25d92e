package compose

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes external commands. The indirection exists so tests can
// record invocations without a container runtime installed.
type Runner interface {
	// Run executes the command in dir with stdout/stderr attached to the
	// terminal, blocking until it exits.
	Run(ctx context.Context, dir string, name string, args ...string) error

	// RunInteractive executes the command with stdin, stdout, and stderr
	// all attached, for interactive shells.
	RunInteractive(ctx context.Context, name string, args ...string) error
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (execRunner) RunInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
