package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run. It is read from a YAML file:
//
//	max_depth: 5000
//	color: auto
//	history: runs.db
//	globals:
//	  tau: 6.283185307179586
type Config struct {
	MaxDepth int                `yaml:"max_depth"`
	Color    string             `yaml:"color"`
	History  string             `yaml:"history"`
	Globals  map[string]float64 `yaml:"globals"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxDepth: DefaultMaxDepth,
		Color:    ColorAuto,
	}
}

// Load reads a configuration file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %s, %s, %s; got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	for name := range c.Globals {
		if name == PiGlobalName || name == EGlobalName {
			return fmt.Errorf("global %q is predeclared", name)
		}
	}
	return nil
}
