// Package cssesc escapes strings into CSS class-selector fragments.
//
// The escaping follows identifier mode of the common JavaScript cssesc
// algorithm, which is what utility-first CSS tools use when they turn a
// theme modifier such as "1/2" or "hover:x" into a selector.
package cssesc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Class escapes name so that "." + Class(name) is a valid class selector.
func Class(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name) + 8)

	for _, r := range name {
		switch {
		case r < 0x20 || r > 0x7E:
			fmt.Fprintf(&b, `\%X `, r)
		case r == '\\' || needsSingleEscape(r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > 1 && out[0] == '-' && (out[1] == '-' || isDigit(out[1])) {
		return `\-` + out[1:]
	}
	if isDigit(out[0]) {
		return `\3` + out[:1] + " " + out[1:]
	}
	return out
}

// Unescape reverses Class. It returns an error for a dangling backslash or an
// escape that does not name a valid code point.
func Unescape(fragment string) (string, error) {
	if !strings.ContainsRune(fragment, '\\') {
		return fragment, nil
	}

	var b strings.Builder
	b.Grow(len(fragment))

	for i := 0; i < len(fragment); {
		c := fragment[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}

		i++
		if i >= len(fragment) {
			return "", fmt.Errorf("unescape %q: dangling backslash", fragment)
		}

		j := i
		for j < len(fragment) && j-i < 6 && isHex(fragment[j]) {
			j++
		}
		if j == i {
			r, size := utf8.DecodeRuneInString(fragment[i:])
			b.WriteRune(r)
			i += size
			continue
		}

		code, err := strconv.ParseUint(fragment[i:j], 16, 32)
		if err != nil || code == 0 || code > utf8.MaxRune {
			return "", fmt.Errorf("unescape %q: invalid code point %q", fragment, fragment[i:j])
		}
		b.WriteRune(rune(code))
		i = j
		if i < len(fragment) && isSpace(fragment[i]) {
			i++
		}
	}

	return b.String(), nil
}

// needsSingleEscape matches printable ASCII that cannot appear bare in an identifier:
// space through ',', '.', '/', ':' through '@', '[' through '^', '`', and '{' through '~'.
func needsSingleEscape(r rune) bool {
	switch {
	case r >= ' ' && r <= ',':
		return true
	case r == '.' || r == '/' || r == '`':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '^':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
