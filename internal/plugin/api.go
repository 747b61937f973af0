package plugin

import (
	"fmt"

	"github.com/alexisbeaulieu97/tailstack/internal/cssesc"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	"github.com/alexisbeaulieu97/tailstack/internal/utility"
)

// Group is one batch of utilities handed back by a plugin.
type Group struct {
	Plugin    string
	Family    string
	Utilities *utility.Result
	Variants  []string
}

// API is the narrow capability set a plugin receives.
type API struct {
	theme    *theme.Theme
	variants func(family string) []string
	escape   func(string) string

	current string
	groups  []Group
}

// NewAPI builds an API over a resolved theme. variants may be nil, in which
// case no family has variants.
func NewAPI(th *theme.Theme, variants func(family string) []string) *API {
	if variants == nil {
		variants = func(string) []string { return nil }
	}
	return &API{theme: th, variants: variants, escape: cssesc.Class}
}

// Theme returns the named scale or an error naming the missing table.
func (a *API) Theme(name string) (theme.Scale, error) {
	scale, ok := a.theme.Lookup(name)
	if !ok {
		return theme.Scale{}, fmt.Errorf("theme has no %q scale", name)
	}
	return scale, nil
}

// Negative returns the negated form of scale.
func (a *API) Negative(scale theme.Scale) theme.Scale {
	return theme.Negative(scale)
}

// Escape escapes a class name for use in a selector.
func (a *API) Escape(name string) string {
	return a.escape(name)
}

// Variants returns the configured variants for a utility family.
func (a *API) Variants(family string) []string {
	return append([]string(nil), a.variants(family)...)
}

// AddUtilities records generated utilities for family under the calling plugin.
func (a *API) AddUtilities(family string, utilities *utility.Result, variants []string) {
	if utilities.Len() == 0 {
		return
	}
	a.groups = append(a.groups, Group{
		Plugin:    a.current,
		Family:    family,
		Utilities: utilities,
		Variants:  variants,
	})
}

// Groups returns everything added so far in order.
func (a *API) Groups() []Group {
	return append([]Group(nil), a.groups...)
}
