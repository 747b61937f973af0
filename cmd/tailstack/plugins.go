package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/tailstack/internal/logger"
	"github.com/alexisbeaulieu97/tailstack/internal/plugin"
	"github.com/alexisbeaulieu97/tailstack/internal/plugins/core"
	"github.com/alexisbeaulieu97/tailstack/internal/plugins/stack"
)

// builtinPlugins lists every generator in output order.
func builtinPlugins() []plugin.Plugin {
	plugins := core.All()
	return append(plugins, stack.NewSpacing(), stack.NewBorder())
}

func newPluginRegistry(log *logger.Logger) (*plugin.Registry, error) {
	registry := plugin.NewRegistry(plugin.DefaultConfig(), log)
	for _, p := range builtinPlugins() {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("register plugin %s: %w", p.PluginMetadata().Name, err)
		}
	}
	return registry, nil
}
