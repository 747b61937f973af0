// Package utility expands theme scales into utility-class rules.
package utility

import (
	"github.com/alexisbeaulieu97/tailstack/internal/cssesc"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
)

// SiblingScope restricts a utility to every child except the first.
const SiblingScope = " > * + *"

// Template pairs a class-naming function with a declaration builder.
type Template struct {
	// Name maps a modifier to the unescaped class name, without the leading dot.
	Name func(modifier string) string
	// Declare maps a scale value to the declaration emitted for it.
	Declare func(value string) Declaration
}

// Entry is one generated rule.
type Entry struct {
	// Token is the unescaped class name as it appears in markup.
	Token       string
	Class       string
	// Scope is the selector text after the class, e.g. " > * + *".
	Scope       string
	Selector    string
	Modifier    string
	Declaration Declaration
}

type options struct {
	escape func(string) string
	scope  string
}

// Option customises Expand.
type Option func(*options)

// WithEscaper replaces the class-name escaper.
func WithEscaper(escape func(string) string) Option {
	return func(o *options) {
		if escape != nil {
			o.escape = escape
		}
	}
}

// WithScope replaces the selector scope appended after the class.
func WithScope(scope string) Option {
	return func(o *options) { o.scope = scope }
}

// Expand produces one entry per (scale entry, template) pair, iterating the
// scale in order and the templates within each entry. The generated class
// name is escaped as a whole so a modifier in leading position is escaped
// the same way the surrounding tool would. Colliding selectors overwrite
// earlier entries silently.
func Expand(scale theme.Scale, templates []Template, opts ...Option) *Result {
	o := options{escape: cssesc.Class, scope: SiblingScope}
	for _, opt := range opts {
		opt(&o)
	}

	result := NewResult()
	scale.Each(func(modifier, value string) {
		for _, tpl := range templates {
			token := tpl.Name(modifier)
			class := o.escape(token)
			result.Set(Entry{
				Token:       token,
				Class:       class,
				Scope:       o.scope,
				Selector:    "." + class + o.scope,
				Modifier:    modifier,
				Declaration: tpl.Declare(value),
			})
		}
	})
	return result
}

// Suffix returns "-"+modifier, or "" when modifier is the sentinel.
func Suffix(modifier, sentinel string) string {
	if modifier == sentinel {
		return ""
	}
	return "-" + modifier
}

// Name returns a naming function that appends Suffix(modifier, theme.DefaultKey) to prefix.
func Name(prefix string) func(string) string {
	return func(modifier string) string {
		return prefix + Suffix(modifier, theme.DefaultKey)
	}
}

// Prefixed returns a naming function that always appends "-"+modifier.
func Prefixed(prefix string) func(string) string {
	return func(modifier string) string {
		return prefix + "-" + modifier
	}
}

// Signed is like Prefixed, but moves a leading "-" of the modifier in front
// of the prefix: "-4" becomes "-translate-x-4".
func Signed(prefix string) func(string) string {
	return func(modifier string) string {
		if len(modifier) > 1 && modifier[0] == '-' {
			return "-" + prefix + "-" + modifier[1:]
		}
		return prefix + "-" + modifier
	}
}
