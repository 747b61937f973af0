package theme

import (
	"strconv"
	"strings"
)

// Negative returns the negated counterpart of scale: each key k becomes "-k"
// and its value is negated. Zero values have no negative form and are skipped.
func Negative(scale Scale) Scale {
	out := NewScale()
	for _, p := range scale.Pairs() {
		if isZero(p.Value) {
			continue
		}
		out.set("-"+p.Key, negateValue(p.Value))
	}
	return out
}

func negateValue(value string) string {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(v, "-"):
		return strings.TrimPrefix(v, "-")
	case strings.HasPrefix(v, "calc("):
		return "calc(" + v + " * -1)"
	default:
		return "-" + v
	}
}

func isZero(value string) bool {
	v := strings.TrimSpace(value)
	end := len(v)
	for end > 0 && (v[end-1] < '0' || v[end-1] > '9') && v[end-1] != '.' {
		end--
	}
	if end == 0 {
		return false
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	return err == nil && f == 0
}
