package main

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// cliConfig holds ambient CLI defaults, loaded from an optional YAML file.
// None of these affect the wire format; they only tune CLI behavior.
type cliConfig struct {
	LogLevel    string `yaml:"log_level"`
	ScratchPool bool   `yaml:"scratch_pool"`
}

// loadConfig reads path (if non-empty) from fsys and parses it as YAML. A
// missing path is not an error: it just returns the zero-value config.
func loadConfig(fsys afero.Fs, path string) (*cliConfig, error) {
	cfg := &cliConfig{}
	if path == "" {
		return cfg, nil
	}

	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
