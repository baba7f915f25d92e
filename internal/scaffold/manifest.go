package scaffold

import (
	"fmt"

	"github.com/kalibox/kalibox/internal/config"
	"gopkg.in/yaml.v3"
)

// Manifest is the compose file written into the project directory. Only the
// fields this tool generates are modeled; the external orchestrator owns the
// full schema.
type Manifest struct {
	Services map[string]Service `yaml:"services"`
	Networks map[string]Network `yaml:"networks"`
}

// Service describes the single sandbox service.
type Service struct {
	Build         string                    `yaml:"build"`
	ContainerName string                    `yaml:"container_name"`
	Volumes       []string                  `yaml:"volumes"`
	Networks      map[string]ServiceNetwork `yaml:"networks"`
	TTY           bool                      `yaml:"tty"`
	StdinOpen     bool                      `yaml:"stdin_open"`
}

// ServiceNetwork pins the service to its static address on the bridge.
type ServiceNetwork struct {
	IPv4Address string `yaml:"ipv4_address"`
}

// Network describes the isolated bridge network.
type Network struct {
	Driver string `yaml:"driver"`
	IPAM   IPAM   `yaml:"ipam"`
}

// IPAM holds the network's address management configuration.
type IPAM struct {
	Config []IPAMConfig `yaml:"config"`
}

// IPAMConfig fixes the bridge subnet.
type IPAMConfig struct {
	Subnet string `yaml:"subnet"`
}

// renderManifest builds the compose manifest for the resolved paths. The
// environment's interactive shell stays attached (tty + stdin_open) so
// `access` lands in a live bash.
func renderManifest(cfg *config.Config) ([]byte, error) {
	m := Manifest{
		Services: map[string]Service{
			config.ServiceName: {
				Build:         ".",
				ContainerName: config.EnvironmentName,
				Volumes: []string{
					fmt.Sprintf("%s:%s", cfg.DataDir, config.MountPoint),
				},
				Networks: map[string]ServiceNetwork{
					config.NetworkName: {IPv4Address: config.StaticAddress},
				},
				TTY:       true,
				StdinOpen: true,
			},
		},
		Networks: map[string]Network{
			config.NetworkName: {
				Driver: "bridge",
				IPAM: IPAM{
					Config: []IPAMConfig{{Subnet: config.Subnet}},
				},
			},
		},
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compose manifest: %w", err)
	}
	return data, nil
}
