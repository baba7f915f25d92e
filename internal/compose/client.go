package compose

import (
	"context"
	"fmt"
)

// Client implements Orchestrator using the docker CLI and the detected
// compose command form.
type Client struct {
	runtime    string  // container runtime binary, "docker"
	cmd        Command // detected compose invocation form
	projectDir string  // directory holding the compose manifest
	runner     Runner
}

// NewClient creates an Orchestrator that runs compose operations from within
// projectDir. Use DetectRuntime and DetectCompose to obtain the first two
// arguments.
func NewClient(runtime string, cmd Command, projectDir string) *Client {
	return &Client{
		runtime:    runtime,
		cmd:        cmd,
		projectDir: projectDir,
		runner:     execRunner{},
	}
}

// composeArgs builds the argument list for a compose subcommand, accounting
// for the plugin form's leading "compose".
func (c *Client) composeArgs(sub ...string) []string {
	args := make([]string, 0, len(c.cmd.Prefix)+len(sub))
	args = append(args, c.cmd.Prefix...)
	args = append(args, sub...)
	return args
}

// Up brings the environment up in detached mode, building if necessary.
func (c *Client) Up(ctx context.Context) error {
	if err := c.runner.Run(ctx, c.projectDir, c.cmd.Bin, c.composeArgs("up", "--build", "-d")...); err != nil {
		return fmt.Errorf("%s up failed: %w", c.cmd, err)
	}
	return nil
}

// Down stops and removes the environment's containers and network.
func (c *Client) Down(ctx context.Context, removeVolumes bool) error {
	sub := []string{"down"}
	if removeVolumes {
		sub = append(sub, "-v")
	}
	if err := c.runner.Run(ctx, c.projectDir, c.cmd.Bin, c.composeArgs(sub...)...); err != nil {
		return fmt.Errorf("%s down failed: %w", c.cmd, err)
	}
	return nil
}

// Status prints the environment's container status.
func (c *Client) Status(ctx context.Context) error {
	if err := c.runner.Run(ctx, c.projectDir, c.cmd.Bin, c.composeArgs("ps")...); err != nil {
		return fmt.Errorf("%s ps failed: %w", c.cmd, err)
	}
	return nil
}

// ExecShell attaches an interactive bash shell to the named container via
// the runtime directly. The exec's exit status propagates unwrapped so the
// caller can surface the underlying exit code.
func (c *Client) ExecShell(ctx context.Context, container string) error {
	return c.runner.RunInteractive(ctx, c.runtime, "exec", "-it", container, "/bin/bash")
}

// Verify Client implements Orchestrator interface
var _ Orchestrator = (*Client)(nil)
