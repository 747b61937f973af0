// Package theme resolves the named scale tables that utility plugins read.
package theme

import (
	"sort"
)

// Scale names understood by Resolve.
const (
	Spacing     = "spacing"
	Padding     = "padding"
	BorderWidth = "borderWidth"
	Width       = "width"
	Translate   = "translate"
	MaxWidth    = "maxWidth"
	Fill        = "fill"
	Colors      = "colors"
	Screens     = "screens"
)

// Options carries user-supplied scales. A zero Scale means "use the default".
type Options struct {
	Spacing     Scale            `yaml:"spacing,omitempty"`
	Padding     Scale            `yaml:"padding,omitempty"`
	BorderWidth Scale            `yaml:"borderWidth,omitempty"`
	Width       Scale            `yaml:"width,omitempty"`
	Translate   Scale            `yaml:"translate,omitempty"`
	MaxWidth    Scale            `yaml:"maxWidth,omitempty"`
	Fill        Scale            `yaml:"fill,omitempty"`
	Colors      Scale            `yaml:"colors,omitempty"`
	Screens     Scale            `yaml:"screens,omitempty"`
	Extend      map[string]Scale `yaml:"extend,omitempty"`
}

// Theme is the resolved, read-only set of scales.
type Theme struct {
	scales map[string]Scale
}

// Resolve layers opts over the stock scales.
//
// Base scales are extended first so that derived scales (padding, width,
// translate) see the extended spacing. Derived scales are then extended on
// their own, and any remaining extend section becomes a new scale.
func Resolve(opts Options) *Theme {
	scales := map[string]Scale{
		Spacing:     orDefault(opts.Spacing, DefaultSpacing),
		BorderWidth: orDefault(opts.BorderWidth, DefaultBorderWidth),
		MaxWidth:    orDefault(opts.MaxWidth, DefaultMaxWidth),
		Fill:        orDefault(opts.Fill, DefaultFill),
		Colors:      orDefault(opts.Colors, DefaultColors),
		Screens:     orDefault(opts.Screens, DefaultScreens),
	}

	applied := make(map[string]bool, len(opts.Extend))
	for _, name := range sortedNames(opts.Extend) {
		if base, ok := scales[name]; ok {
			scales[name] = base.Merge(opts.Extend[name])
			applied[name] = true
		}
	}

	spacing := scales[Spacing]
	scales[Padding] = orDefault(opts.Padding, spacing)
	scales[Width] = widthScale(spacing).Merge(opts.Width)
	scales[Translate] = translateScale(spacing).Merge(opts.Translate)

	for _, name := range sortedNames(opts.Extend) {
		if applied[name] {
			continue
		}
		scales[name] = scales[name].Merge(opts.Extend[name])
	}

	return &Theme{scales: scales}
}

// Default returns the theme with no user overrides.
func Default() *Theme {
	return Resolve(Options{})
}

// Lookup returns the named scale.
func (t *Theme) Lookup(name string) (Scale, bool) {
	if t == nil {
		return Scale{}, false
	}
	s, ok := t.scales[name]
	return s, ok
}

// Names lists every resolved scale name in sorted order.
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	return sortedNames(t.scales)
}

func widthScale(spacing Scale) Scale {
	return NewScale(Pair{"auto", "auto"}).
		Merge(spacing).
		Merge(Fractions).
		Merge(NewScale(Pair{"full", "100%"}, Pair{"screen", "100vw"}))
}

func translateScale(spacing Scale) Scale {
	return spacing.Merge(Negative(spacing)).Merge(translateExtras)
}

func orDefault(s, fallback Scale) Scale {
	if s.Len() == 0 {
		return fallback
	}
	return s
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
