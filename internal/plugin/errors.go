package plugin

import (
	"fmt"
	"strings"
)

// ErrPluginNotFound is returned when the requested plugin is not registered.
type ErrPluginNotFound struct {
	Name string
}

func (e ErrPluginNotFound) Error() string {
	return fmt.Sprintf("plugin '%s' not found in registry\nHint: ensure the plugin is registered before usage", e.Name)
}

// ErrCircularDependency is returned when a dependency cycle is detected.
type ErrCircularDependency struct {
	Cycle []string
}

func (e ErrCircularDependency) Error() string {
	if len(e.Cycle) == 0 {
		return "circular dependency detected\nHint: review plugin dependencies to remove cycles"
	}

	sequence := append(append([]string{}, e.Cycle...), e.Cycle[0])
	return fmt.Sprintf(
		"circular dependency detected: %s\nHint: break the cycle by removing or refactoring one of the dependencies",
		strings.Join(sequence, " -> "),
	)
}

// ErrMissingDependency is returned when a declared dependency has not been registered.
type ErrMissingDependency struct {
	Plugin     string
	Dependency string
}

func (e ErrMissingDependency) Error() string {
	return fmt.Sprintf(
		"plugin '%s' declares dependency '%s' which is not registered\nHint: register the dependency or drop it from Metadata.Dependencies",
		e.Plugin,
		e.Dependency,
	)
}

// ErrDuplicatePlugin is returned when two plugins share a name.
type ErrDuplicatePlugin struct {
	Name string
}

func (e ErrDuplicatePlugin) Error() string {
	return fmt.Sprintf("plugin '%s' already registered", e.Name)
}
