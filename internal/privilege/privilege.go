// Package privilege checks whether the caller may manage the container
// runtime, either by running as root or by membership in the docker group.
package privilege

import (
	"errors"
	"os"
	"os/user"
)

// ErrNotPrivileged is returned when the caller can manage neither the
// runtime socket directly nor through group membership.
var ErrNotPrivileged = errors.New("insufficient privilege: run as root or join the docker group")

// dockerGroup is the group whose members may talk to the runtime socket.
const dockerGroup = "docker"

// Check verifies the caller can manage the container runtime. It must run
// before any filesystem or subprocess effect so failures are clean.
func Check() error {
	if os.Geteuid() == 0 {
		return nil
	}

	current, err := user.Current()
	if err != nil {
		return ErrNotPrivileged
	}

	group, err := user.LookupGroup(dockerGroup)
	if err != nil {
		return ErrNotPrivileged
	}

	gids, err := current.GroupIds()
	if err != nil {
		return ErrNotPrivileged
	}
	for _, gid := range gids {
		if gid == group.Gid {
			return nil
		}
	}

	return ErrNotPrivileged
}
