package compose

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrNoRuntime is returned when no container runtime is found.
var ErrNoRuntime = errors.New("no container runtime found (need docker)")

// ErrNoCompose is returned when neither compose command form is found.
var ErrNoCompose = errors.New("no compose command found (need the docker compose plugin or docker-compose)")

// Command is the detected invocation form of the compose tool: the modern
// plugin form (`docker compose`) or the legacy standalone form
// (`docker-compose`).
type Command struct {
	// Bin is the executable to invoke.
	Bin string

	// Prefix holds arguments that precede every compose subcommand.
	// Empty for the legacy form, ["compose"] for the plugin form.
	Prefix []string
}

// String returns the command as the user would type it.
func (c Command) String() string {
	if len(c.Prefix) == 0 {
		return c.Bin
	}
	return c.Bin + " " + strings.Join(c.Prefix, " ")
}

// DetectRuntime finds an available container runtime. Verifies the binary
// actually works by running `docker version`.
func DetectRuntime() (string, error) {
	if _, err := exec.LookPath("docker"); err != nil {
		return "", ErrNoRuntime
	}
	if err := exec.Command("docker", "version").Run(); err != nil {
		return "", ErrNoRuntime
	}
	return "docker", nil
}

// DetectCompose probes for an available compose command. The plugin form is
// preferred; the legacy standalone binary is the fallback.
func DetectCompose(runtime string) (Command, error) {
	if err := exec.Command(runtime, "compose", "version").Run(); err == nil {
		return Command{Bin: runtime, Prefix: []string{"compose"}}, nil
	}
	if _, err := exec.LookPath("docker-compose"); err == nil {
		if err := exec.Command("docker-compose", "version").Run(); err == nil {
			return Command{Bin: "docker-compose"}, nil
		}
	}
	return Command{}, ErrNoCompose
}
