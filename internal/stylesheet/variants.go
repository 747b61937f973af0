package stylesheet

import (
	"sort"
)

// Responsive expands a utility into one copy per screen.
const Responsive = "responsive"

// GroupHover applies a utility when a ".group" ancestor is hovered.
const GroupHover = "group-hover"

// pseudoVariants map a variant name to the pseudo-class it appends.
var pseudoVariants = map[string]string{
	"hover":        ":hover",
	"focus":        ":focus",
	"active":       ":active",
	"focus-within": ":focus-within",
	"visited":      ":visited",
	"disabled":     ":disabled",
}

// DefaultVariants are the stock per-family variant lists.
var DefaultVariants = map[string][]string{
	"padding":        {Responsive},
	"borderWidth":    {Responsive},
	"width":          {Responsive},
	"maxWidth":       {Responsive},
	"translate":      {Responsive, "hover", "focus"},
	"fill":           {Responsive},
	"textColor":      {Responsive, "hover", "focus"},
	"textDecoration": {Responsive, "hover", "focus"},
}

// IsKnownVariant reports whether name can be expanded.
func IsKnownVariant(name string) bool {
	if name == Responsive || name == GroupHover {
		return true
	}
	_, ok := pseudoVariants[name]
	return ok
}

// KnownVariants lists every supported variant name.
func KnownVariants() []string {
	names := []string{Responsive, GroupHover}
	for name := range pseudoVariants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants resolves the variant list for a family, preferring overrides.
type Variants struct {
	overrides map[string][]string
}

// NewVariants layers overrides over DefaultVariants. A family present in
// overrides replaces the default list entirely; an empty list disables variants.
func NewVariants(overrides map[string][]string) Variants {
	return Variants{overrides: overrides}
}

// For returns the variants configured for family.
func (v Variants) For(family string) []string {
	if list, ok := v.overrides[family]; ok {
		return append([]string(nil), list...)
	}
	return append([]string(nil), DefaultVariants[family]...)
}
