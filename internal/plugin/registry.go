package plugin

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/tailstack/internal/logger"
)

// DependencyPolicy controls how the registry responds to dependency failures.
type DependencyPolicy string

const (
	// PolicyStrict fails fast when dependency validation fails.
	PolicyStrict DependencyPolicy = "strict"
	// PolicyGraceful disables affected plugins and keeps building.
	PolicyGraceful DependencyPolicy = "graceful"
)

// RegistryConfig configures registry validation.
type RegistryConfig struct {
	DependencyPolicy DependencyPolicy
}

// DefaultConfig returns environment-aware defaults: strict on CI, graceful elsewhere.
func DefaultConfig() *RegistryConfig {
	if isCIEnvironment() {
		return &RegistryConfig{DependencyPolicy: PolicyStrict}
	}
	return &RegistryConfig{DependencyPolicy: PolicyGraceful}
}

func isCIEnvironment() bool {
	for _, key := range []string{"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_HOME"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" && strings.ToLower(value) != "false" && value != "0" {
			return true
		}
	}
	return false
}

// Registry manages plugin registration and ordering.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[string]Plugin
	metadata map[string]Metadata
	graph    *DependencyGraph
	disabled map[string]bool
	logger   *logger.Logger
	config   *RegistryConfig
}

// NewRegistry returns a new registry instance.
func NewRegistry(config *RegistryConfig, log *logger.Logger) *Registry {
	if config == nil {
		config = DefaultConfig()
	}
	return &Registry{
		plugins:  make(map[string]Plugin),
		metadata: make(map[string]Metadata),
		graph:    NewDependencyGraph(),
		disabled: make(map[string]bool),
		logger:   log,
		config:   config,
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin is nil")
	}

	meta := p.PluginMetadata()
	if err := meta.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[meta.Name]; exists {
		return ErrDuplicatePlugin{Name: meta.Name}
	}

	r.plugins[meta.Name] = p
	r.metadata[meta.Name] = meta
	r.graph.AddNode(meta.Name)
	for _, dep := range meta.Dependencies {
		r.graph.AddEdge(meta.Name, dep)
	}
	return nil
}

// MustRegister registers every plugin and panics on failure. It is meant for
// wiring built-in plugins at startup.
func (r *Registry) MustRegister(plugins ...Plugin) *Registry {
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

// Get retrieves an enabled plugin by name.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.plugins[name]
	if !exists || r.disabled[name] {
		return nil, ErrPluginNotFound{Name: name}
	}
	return p, nil
}

// Metadata returns the stored metadata for name.
func (r *Registry) Metadata(name string) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.metadata[name]
	return meta, ok
}

// List returns enabled plugin names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for _, name := range r.graph.order {
		if _, ok := r.plugins[name]; ok && !r.disabled[name] {
			names = append(names, name)
		}
	}
	return names
}

// Disable removes a plugin from List and Ordered without unregistering it.
func (r *Registry) Disable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled[name] = true
}

// ValidateDependencies checks that every declared dependency is registered
// and that the graph is acyclic. Under PolicyGraceful offending plugins are
// disabled and a warning is logged instead of failing.
func (r *Registry) ValidateDependencies() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range r.graph.order {
		meta, ok := r.metadata[name]
		if !ok {
			continue
		}
		for _, dep := range meta.Dependencies {
			if _, exists := r.plugins[dep]; exists {
				continue
			}
			err := ErrMissingDependency{Plugin: name, Dependency: dep}
			if r.config.DependencyPolicy == PolicyStrict {
				return err
			}
			r.disabled[name] = true
			r.logWarn(err.Error())
		}
	}

	if cycle := r.graph.DetectCycle(); len(cycle) > 0 {
		err := ErrCircularDependency{Cycle: cycle}
		if r.config.DependencyPolicy == PolicyStrict {
			return err
		}
		for _, name := range cycle {
			r.disabled[name] = true
		}
		r.logWarn(err.Error())
	}

	return nil
}

// Ordered returns enabled plugins with dependencies first. Plugins that
// depend on a disabled plugin are skipped as well.
func (r *Registry) Ordered() ([]Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub := NewDependencyGraph()
	for _, name := range r.graph.order {
		if _, ok := r.plugins[name]; !ok || r.disabled[name] {
			continue
		}
		sub.AddNode(name)
	}
	for _, name := range sub.order {
		for _, dep := range r.metadata[name].Dependencies {
			if !sub.HasNode(dep) {
				continue
			}
			sub.AddEdge(name, dep)
		}
	}

	names, err := sub.TopologicalSort()
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]bool)
	out := make([]Plugin, 0, len(names))
	for _, name := range names {
		skip := false
		for _, dep := range r.metadata[name].Dependencies {
			if !sub.HasNode(dep) || blocked[dep] {
				skip = true
				break
			}
		}
		if skip {
			blocked[name] = true
			continue
		}
		out = append(out, r.plugins[name])
	}
	return out, nil
}

func (r *Registry) logWarn(msg string) {
	if r.logger == nil {
		return
	}
	r.logger.Warn(msg)
}
