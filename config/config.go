package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/banner/version"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Extra font files tried before the built-in monospace font
	Fonts []string `yaml:"fonts,omitempty" json:"fonts,omitempty"`

	path string
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/banner/config.yml
// 2. $XDG_CONFIG_HOME/banner/config.yaml
// If no config file is found, it returns an empty Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	basePath := filepath.Join(configPath(), "config")
	for _, ext := range []string{".yml", ".yaml"} {
		p := basePath + ext
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", p, err)
		}
		for i, f := range cfg.Fonts {
			if !filepath.IsAbs(f) {
				cfg.Fonts[i] = filepath.Join(configPath(), f)
			}
		}
		cfg.path = p
		return cfg, nil
	}
	return cfg, nil
}

// Path returns the path of the loaded config file, or empty if none was found.
func (c *Config) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, version.Name)
	} else {
		configHomePath = filepath.Join(homePath, ".config", version.Name)
	}
	return configHomePath
}

func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, version.Name)
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", version.Name)
	}
	return stateHomePath
}
