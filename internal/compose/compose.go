package compose

import "context"

// Orchestrator provides sandbox environment lifecycle management by
// delegating to the external compose command. Implementations report the
// external command's outcome and perform no independent verification that
// the environment actually reached the requested state.
type Orchestrator interface {
	// Up brings the environment up, building the image if necessary.
	// Blocks until the external command exits.
	Up(ctx context.Context) error

	// Down stops and removes the environment's containers and network.
	// With removeVolumes it also removes associated volumes.
	Down(ctx context.Context, removeVolumes bool) error

	// Status prints the environment's container status to stdout.
	Status(ctx context.Context) error

	// ExecShell attaches an interactive shell to the named running
	// container, bypassing the compose layer. If the container is not
	// running the runtime's own diagnostic is surfaced unchanged.
	ExecShell(ctx context.Context, container string) error
}
