package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Env holds settings read from the process environment.
type Env struct {
	BuildEnv  string `envconfig:"NODE_ENV" default:"development"`
	LogLevel  string `envconfig:"TAILSTACK_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"TAILSTACK_LOG_FORMAT" default:"console"`
}

// LoadEnv reads Env from the environment.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	switch strings.ToLower(env.LogFormat) {
	case "console", "json":
	default:
		return nil, fmt.Errorf("TAILSTACK_LOG_FORMAT must be console or json, got %q", env.LogFormat)
	}
	return &env, nil
}

// Production reports whether this is a production build, which enables purge.
func (e *Env) Production() bool {
	return e != nil && strings.EqualFold(strings.TrimSpace(e.BuildEnv), "production")
}

// HumanReadable reports whether logs should use the console writer.
func (e *Env) HumanReadable() bool {
	return e == nil || !strings.EqualFold(e.LogFormat, "json")
}

// PurgeEnabled decides whether to purge: an explicit config setting wins,
// otherwise production builds purge.
func (c *Config) PurgeEnabled(env *Env) bool {
	if c != nil && c.Purge.Enabled != nil {
		return *c.Purge.Enabled
	}
	return env.Production()
}
