package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional ~/.kalibox/config.yaml. Empty fields leave
// the defaults untouched.
type fileConfig struct {
	ProjectDir string `yaml:"project_dir"`
	DataDir    string `yaml:"data_dir"`
}

// applyFileOverrides loads path overrides from a yaml file if it exists.
// A missing file is not an error; a malformed one is.
func applyFileOverrides(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.ProjectDir != "" {
		cfg.ProjectDir = fc.ProjectDir
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}

	return nil
}
