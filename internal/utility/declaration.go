package utility

import (
	"strings"
	"unicode"
)

// Property is a single CSS property/value pair.
type Property struct {
	Name  string
	Value string
}

// Declaration is an ordered list of properties applied to one selector.
type Declaration []Property

// Decl builds a single-property declaration. The name may be camelCase
// ("marginTop") or kebab-case ("margin-top").
func Decl(name, value string) Declaration {
	return Declaration{{Name: Kebab(name), Value: value}}
}

// Set returns a template declaration function that assigns the value to each
// of the named properties.
func Set(names ...string) func(value string) Declaration {
	kebab := make([]string, len(names))
	for i, n := range names {
		kebab[i] = Kebab(n)
	}
	return func(value string) Declaration {
		d := make(Declaration, len(kebab))
		for i, n := range kebab {
			d[i] = Property{Name: n, Value: value}
		}
		return d
	}
}

// String renders the declaration body without braces.
func (d Declaration) String() string {
	var b strings.Builder
	for i, p := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Kebab converts a camelCase property name to CSS kebab-case. Custom
// properties ("--x") and names that are already kebab-case pass through.
func Kebab(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
