package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "KALIBOX_PROJECT_DIR",
		apply: func(c *Config, v string) {
			c.ProjectDir = v
		},
	},
	{
		envVar: "KALIBOX_DATA_DIR",
		apply: func(c *Config, v string) {
			c.DataDir = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
