package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// Fixed identifiers for the sandbox environment. The container name is what
// `kalibox access` execs into, so it must match the manifest exactly.
const (
	EnvironmentName = "kali_sandbox"
	ServiceName     = "kali"
	NetworkName     = "sandbox_net"
	Subnet          = "172.30.9.0/24"
	StaticAddress   = "172.30.9.2"
	MountPoint      = "/sandbox"
	BaseImage       = "kalilinux/kali-rolling"
)

// ManifestName is the compose manifest filename inside the project directory.
// Its presence is what marks a project directory as already scaffolded.
const ManifestName = "docker-compose.yml"

// Config holds the paths resolved once at startup and passed to each
// subcommand. It is never mutated after Resolve returns.
type Config struct {
	// ProjectDir holds the generated Dockerfile, compose manifest, usage
	// guide, and a copy of the CLI. Default: <home>/kali_sandbox.
	ProjectDir string

	// DataDir is bind-mounted into the environment at MountPoint and
	// survives environment recreation. Default: <home>/sandbox.
	DataDir string
}

// ManifestPath returns the full path of the compose manifest.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.ProjectDir, ManifestName)
}

// Resolve builds the configuration for this invocation: defaults under the
// invoking user's home, then ~/.kalibox/config.yaml, then environment
// variables. Later layers win.
func Resolve() (*Config, error) {
	home, err := invokingUserHome()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	cfg := &Config{
		ProjectDir: filepath.Join(home, "kali_sandbox"),
		DataDir:    filepath.Join(home, "sandbox"),
	}

	if err := applyFileOverrides(cfg, filepath.Join(home, ".kalibox", "config.yaml")); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// invokingUserHome returns the home directory of the user who ran the
// command. Under sudo the process's own home is root's, which would silently
// redirect generated files into /root, so prefer the SUDO_USER account.
func invokingUserHome() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && os.Geteuid() == 0 {
		u, err := user.Lookup(sudoUser)
		if err == nil && u.HomeDir != "" {
			return u.HomeDir, nil
		}
	}
	return os.UserHomeDir()
}
