package plugin

import (
	"fmt"
	"regexp"
	"strings"
)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Metadata describes plugin identity, the utility family it feeds, and the
// plugins whose utilities must be emitted before its own.
type Metadata struct {
	Name         string
	Version      string
	Family       string
	Dependencies []string
	Description  string
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("plugin metadata requires a non-empty Name")
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("plugin '%s' metadata requires Version", m.Name)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("plugin '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.Name, m.Version)
	}
	if strings.TrimSpace(m.Family) == "" {
		return fmt.Errorf("plugin '%s' metadata requires Family", m.Name)
	}

	seen := map[string]struct{}{}
	for _, dep := range m.Dependencies {
		if strings.TrimSpace(dep) == "" {
			return fmt.Errorf("plugin '%s' declares dependency with empty name", m.Name)
		}
		if dep == m.Name {
			return fmt.Errorf("plugin '%s' cannot depend on itself", m.Name)
		}
		if _, exists := seen[dep]; exists {
			return fmt.Errorf("plugin '%s' lists dependency '%s' more than once", m.Name, dep)
		}
		seen[dep] = struct{}{}
	}

	return nil
}
