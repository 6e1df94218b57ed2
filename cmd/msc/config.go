package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const defaultSchemaDir = "./markdown_schema"

// fileConfig is the optional YAML config file. Flags given on the command
// line win over anything set here.
type fileConfig struct {
	SchemaDir string `yaml:"schema_dir"`
	NoColor   bool   `yaml:"no_color"`
	Verbose   bool   `yaml:"verbose"`
}

// defaultConfigPath sits under the XDG config home; overridable in tests.
var defaultConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "msc", "config.yaml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file is fine; a missing explicit file is
// an error, since the user asked for it.
func loadConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
