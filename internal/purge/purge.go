package purge

import (
	"context"
	"sort"
)

// TokenSet is the set of class-name candidates seen in content.
type TokenSet map[string]struct{}

// Has reports whether token was seen.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Purger keeps utilities whose class token appears in content or the safelist.
type Purger struct {
	extractor *Extractor
	safelist  map[string]struct{}
	tokens    TokenSet
}

// New returns a purger using extractor (DefaultExtractor when nil).
func New(extractor *Extractor, safelist []string) *Purger {
	if extractor == nil {
		extractor = DefaultExtractor()
	}
	safe := make(map[string]struct{}, len(safelist))
	for _, s := range safelist {
		safe[s] = struct{}{}
	}
	return &Purger{extractor: extractor, safelist: safe, tokens: make(TokenSet)}
}

// Collect extracts tokens from every source into the purger's token set.
func (p *Purger) Collect(ctx context.Context, sources []Source) (TokenSet, error) {
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, tok := range p.extractor.Extract(src.Text) {
			p.tokens[tok] = struct{}{}
		}
	}
	return p.tokens, nil
}

// Keep reports whether a rule with this class token survives.
func (p *Purger) Keep(token string) bool {
	if _, ok := p.safelist[token]; ok {
		return true
	}
	return p.tokens.Has(token)
}
