package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultResDir holds the .graphe resources.
	DefaultResDir = "res"
	// DefaultConfigFile is the config file name under the OS config dir.
	DefaultConfigFile = "config.yaml"
	// DefaultRadius is the circle radius for vertices without a layout entry.
	DefaultRadius = 4.0
)

// Config is the optional YAML configuration. Command-line flags override
// every field.
type Config struct {
	// ResDir is the directory graph names are resolved against.
	ResDir string `yaml:"res_dir,omitempty"`

	// Format is the stdout format: text, yaml, json or table.
	Format string `yaml:"format,omitempty"`

	// CacheDir enables the on-disk coloring cache when set.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// Radius of the fallback circle layout.
	Radius float64 `yaml:"radius,omitempty"`

	// Renderer selects the Graphviz engine for --render.
	Renderer RendererConfig `yaml:"renderer,omitempty"`

	path string
}

// RendererConfig configures the external renderer.
type RendererConfig struct {
	Command string `yaml:"command,omitempty"`
	Format  string `yaml:"format,omitempty"`
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string { return c.path }

func defaultConfig() *Config {
	return &Config{
		ResDir: DefaultResDir,
		Format: FormatText,
		Radius: DefaultRadius,
	}
}

// DefaultConfigPath returns <os config dir>/fivecolor/config.yaml.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("FIVECOLOR_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, DefaultConfigFile), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "fivecolor", DefaultConfigFile), nil
}

// LoadConfig reads path over the defaults. An empty path means the default
// location, where a missing file is not an error; an explicit path must
// exist.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}
