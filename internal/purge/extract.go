// Package purge decides which generated utilities survive a production
// build by matching their class names against tokens found in content files.
package purge

import (
	"fmt"
	"regexp"
)

// DefaultPattern matches runs of word characters, dashes and colons, so
// variant-prefixed names such as "md:stack-my-4" come through whole.
const DefaultPattern = `[\w-][\w-:]*`

// Extractor pulls candidate class-name tokens out of source text.
type Extractor struct {
	re *regexp.Regexp
}

// NewExtractor compiles pattern, falling back to DefaultPattern when empty.
func NewExtractor(pattern string) (*Extractor, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile extractor pattern %q: %w", pattern, err)
	}
	return &Extractor{re: re}, nil
}

// DefaultExtractor returns the extractor for DefaultPattern.
func DefaultExtractor() *Extractor {
	return &Extractor{re: regexp.MustCompile(DefaultPattern)}
}

// Extract returns every match in source, in order, duplicates included.
func (e *Extractor) Extract(source string) []string {
	return e.re.FindAllString(source, -1)
}

// Pattern returns the compiled expression source.
func (e *Extractor) Pattern() string {
	return e.re.String()
}
