// Package config loads and validates the declarative tailstack configuration.
package config

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/tailstack/internal/theme"
)

// Config represents the full configuration document.
type Config struct {
	Version  string              `yaml:"version" validate:"required,semver"`
	Theme    theme.Options       `yaml:"theme,omitempty"`
	Variants map[string][]string `yaml:"variants,omitempty" validate:"omitempty,dive,dive,variant"`
	Purge    Purge               `yaml:"purge,omitempty"`
	Output   string              `yaml:"output,omitempty"`

	// Path is the file the configuration was read from.
	Path string `yaml:"-"`
}

// Purge configures unused-utility elimination.
type Purge struct {
	Content   []string `yaml:"content,omitempty" toml:"content" validate:"omitempty,dive,required"`
	Extractor string   `yaml:"extractor,omitempty" toml:"extractor" validate:"omitempty,extractor_regexp"`
	Safelist  []string `yaml:"safelist,omitempty" toml:"safelist" validate:"omitempty,dive,required"`
	// Enabled forces purge on or off regardless of the build environment.
	Enabled *bool `yaml:"enabled,omitempty" toml:"enabled"`
}

// Dir returns the directory content globs are resolved against.
func (c *Config) Dir() string {
	if c == nil || c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// ResolveTheme resolves the configured theme over the stock scales.
func (c *Config) ResolveTheme() *theme.Theme {
	if c == nil {
		return theme.Default()
	}
	return theme.Resolve(c.Theme)
}
