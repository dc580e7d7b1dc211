// Package config loads the optional application manifest: display metadata
// plus switches for color output, logging, and individual plugins. A missing
// file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/clif/plugin"
)

// Config is the YAML application manifest.
type Config struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Log is the minimum log level: debug, info, warn, error.
	Log string `yaml:"log"`

	// Color enables styled output. Nil means "decide from the terminal".
	Color *bool `yaml:"color"`

	// Plugins toggles plugins by id. Absent ids stay enabled.
	Plugins map[string]bool `yaml:"plugins"`
}

// Default returns the configuration used when no manifest exists.
func Default() *Config {
	return &Config{Log: "warn"}
}

// Load reads a manifest from path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FilterPlugins drops plugins the manifest disables, preserving order.
func (c *Config) FilterPlugins(plugins []*plugin.Plugin) []*plugin.Plugin {
	if len(c.Plugins) == 0 {
		return plugins
	}
	out := make([]*plugin.Plugin, 0, len(plugins))
	for _, p := range plugins {
		if enabled, ok := c.Plugins[p.ID]; ok && !enabled {
			continue
		}
		out = append(out, p)
	}
	return out
}
