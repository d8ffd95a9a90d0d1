package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are the config file names probed by Discover, in order.
var FileNames = []string{".srcmd.toml", ".srcmd.yaml", ".srcmd.yml"}

// Config holds srcmd tool configuration.
type Config struct {
	// Output is the default bundle file path for collect and watch.
	Output string `toml:"output" yaml:"output" json:"output,omitempty" jsonschema:"description=Default bundle file path"`

	// ExcludeDirs lists directory names pruned from the walk.
	ExcludeDirs []string `toml:"exclude_dirs" yaml:"exclude_dirs" json:"exclude_dirs,omitempty" jsonschema:"description=Directory names pruned wherever they appear"`

	// ExcludeGlobs lists glob patterns matched against relative paths.
	ExcludeGlobs []string `toml:"exclude_globs" yaml:"exclude_globs" json:"exclude_globs,omitempty" jsonschema:"description=Glob patterns for paths to skip"`

	// Languages maps file extensions (with dot) to fence language tags,
	// overriding the built-in mapping.
	Languages map[string]string `toml:"languages" yaml:"languages" json:"languages,omitempty" jsonschema:"description=Extension to fence-tag overrides"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Output:      "output.md",
		ExcludeDirs: []string{"node_modules", "vendor", "__pycache__"},
	}
}

// Load reads a config file, dispatching on its extension (.toml, .yaml,
// .yml). Unset fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}
	return cfg, nil
}

// Discover looks for a config file in dir and loads the first one found.
// Returns the defaults and an empty path when no file exists.
func Discover(dir string) (Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		return cfg, path, err
	}
	return Default(), "", nil
}
