// Package config handles loading and saving horalog configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Report formats.
const (
	FormatText     = "text"
	FormatYAML     = "yaml"
	FormatJSONL    = "jsonl"
	FormatTemplate = "template"
)

// Config holds the settings shared by all commands.
type Config struct {
	Samples  int    `yaml:"samples" mapstructure:"samples"`     // how many wins to draw
	Seed     uint64 `yaml:"seed" mapstructure:"seed"`           // 0 = seed from the clock
	Format   string `yaml:"format" mapstructure:"format"`       // text, yaml, jsonl, template
	Glyphs   bool   `yaml:"glyphs" mapstructure:"glyphs"`       // render tiles as Unicode glyphs
	LogLevel string `yaml:"log_level" mapstructure:"log_level"` // debug, info, warn, error
	Template string `yaml:"template" mapstructure:"template"`   // text/template for FormatTemplate
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Samples:  10,
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Validate checks values that the commands cannot recover from.
func (c Config) Validate() error {
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatJSONL, FormatTemplate:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadDir reads the config file from a config directory.
func LoadDir(dir string) (Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "horalog"), nil
}
