// Package config holds the ducklox tool configuration, loaded from an
// optional .ducklox.yaml file. CLI flags override anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// explicit path is given.
const DefaultPath = ".ducklox.yaml"

// Config represents the complete ducklox configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
	REPL   REPLConfig   `yaml:"repl"`
}

// OutputConfig controls how tokens and diagnostics are rendered
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// WatchConfig controls watch mode
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"` // delay before rescanning after a change
}

// REPLConfig controls the interactive prompt
type REPLConfig struct {
	HistoryFile string `yaml:"history_file"` // defaults to a temp-dir history file
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Watch: WatchConfig{
			DebounceMS: 100,
		},
	}
}

// Load reads configuration from a file. A missing file at the default path is
// not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the tool cannot honor.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (want \"text\" or \"json\")", c.Output.Format)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	return nil
}
