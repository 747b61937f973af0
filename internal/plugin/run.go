package plugin

import (
	"context"

	"github.com/alexisbeaulieu97/tailstack/internal/logger"
	tailerrors "github.com/alexisbeaulieu97/tailstack/pkg/errors"
)

// Run validates the registry, then generates utilities from every enabled
// plugin in dependency order. The context is checked between plugins.
func Run(ctx context.Context, registry *Registry, api *API, log *logger.Logger) ([]Group, error) {
	if err := registry.ValidateDependencies(); err != nil {
		return nil, err
	}

	plugins, err := registry.Ordered()
	if err != nil {
		return nil, err
	}

	for _, p := range plugins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		meta := p.PluginMetadata()
		api.current = meta.Name
		before := len(api.groups)

		if err := p.Generate(api); err != nil {
			return nil, tailerrors.NewPluginError(meta.Name, err)
		}

		count := 0
		for _, g := range api.groups[before:] {
			count += g.Utilities.Len()
		}
		log.WithFields(map[string]any{"plugin": meta.Name, "utilities": count}).Debug("generated utilities")
	}
	api.current = ""

	return api.Groups(), nil
}
