package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the sentinel modifier that names the base utility of a family.
const DefaultKey = "default"

// Pair is one modifier/value entry of a Scale.
type Pair struct {
	Key   string
	Value string
}

// Scale is an ordered, immutable mapping from modifier to CSS value.
// Keys are unique; re-adding a key replaces its value in place.
type Scale struct {
	keys   []string
	values map[string]string
}

// NewScale builds a scale from pairs in order.
func NewScale(pairs ...Pair) Scale {
	s := Scale{values: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		s.set(p.Key, p.Value)
	}
	return s
}

// FromMap builds a scale from an unordered map, sorting keys naturally so
// "2" precedes "10".
func FromMap(m map[string]string) Scale {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortKeys(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return NewScale(pairs...)
}

func (s *Scale) set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Len returns the number of entries.
func (s Scale) Len() int { return len(s.keys) }

// Get returns the value stored for key.
func (s Scale) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns a copy of the modifiers in order.
func (s Scale) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Pairs returns a copy of the entries in order.
func (s Scale) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s.keys))
	for _, k := range s.keys {
		pairs = append(pairs, Pair{Key: k, Value: s.values[k]})
	}
	return pairs
}

// Each calls fn for every entry in order.
func (s Scale) Each(fn func(key, value string)) {
	for _, k := range s.keys {
		fn(k, s.values[k])
	}
}

// Map returns the entries as a plain map.
func (s Scale) Map() map[string]string {
	out := make(map[string]string, len(s.keys))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Merge returns a new scale holding s followed by other. Keys present in both
// take the value from other and keep the position they had in s.
func (s Scale) Merge(other Scale) Scale {
	merged := NewScale(s.Pairs()...)
	for _, p := range other.Pairs() {
		merged.set(p.Key, p.Value)
	}
	return merged
}

// Without returns a copy of s without the named keys.
func (s Scale) Without(keys ...string) Scale {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := NewScale()
	for _, p := range s.Pairs() {
		if _, ok := drop[p.Key]; ok {
			continue
		}
		out.set(p.Key, p.Value)
	}
	return out
}

// UnmarshalYAML decodes a mapping node, keeping document order. Numeric
// keys and values are taken verbatim from the source text.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: scale must be a mapping of modifier to value", node.Line)
	}

	*s = NewScale()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: scale entries must be scalar values", key.Line)
		}
		s.set(key.Value, value.Value)
	}
	return nil
}

// MarshalYAML emits the scale as an ordered mapping.
func (s Scale) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range s.Pairs() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}
	return node, nil
}

// SortKeys orders modifiers naturally: numeric keys ascending by value, then
// everything else lexically. A leading "-" sorts after its positive form.
func SortKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		na, aNeg := strings.CutPrefix(a, "-")
		nb, bNeg := strings.CutPrefix(b, "-")
		fa, errA := strconv.ParseFloat(na, 64)
		fb, errB := strconv.ParseFloat(nb, 64)
		switch {
		case errA == nil && errB == nil:
			if fa != fb {
				return fa < fb
			}
			if aNeg != bNeg {
				return !aNeg
			}
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return a < b
	})
}
