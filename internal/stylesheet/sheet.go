// Package stylesheet expands generated utilities through their variants and
// renders the result as CSS.
package stylesheet

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/tailstack/internal/cssesc"
	"github.com/alexisbeaulieu97/tailstack/internal/logger"
	"github.com/alexisbeaulieu97/tailstack/internal/plugin"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	"github.com/alexisbeaulieu97/tailstack/internal/utility"
)

// Rule is one selector/declaration pair in the final sheet.
type Rule struct {
	// Token is the class name as written in markup, variant prefixes included.
	Token       string
	Selector    string
	Family      string
	Declaration utility.Declaration
}

type block struct {
	order []string
	rules map[string]Rule
}

func newBlock() *block {
	return &block{rules: make(map[string]Rule)}
}

// Sheet holds the base rules and one block per screen.
type Sheet struct {
	screens []theme.Pair
	base    *block
	media   map[string]*block
	log     *logger.Logger
}

// New returns an empty sheet for the given screens.
func New(screens theme.Scale, log *logger.Logger) *Sheet {
	s := &Sheet{
		screens: screens.Pairs(),
		base:    newBlock(),
		media:   make(map[string]*block, screens.Len()),
		log:     log,
	}
	for _, p := range s.screens {
		s.media[p.Key] = newBlock()
	}
	return s
}

// Build expands every group through its variants into a new sheet.
func Build(groups []plugin.Group, screens theme.Scale, log *logger.Logger) (*Sheet, error) {
	s := New(screens, log)
	for _, g := range groups {
		if err := s.AddGroup(g); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddGroup adds a plugin group: base rules first, then each non-responsive
// variant, then the same again inside every screen when responsive is listed.
func (s *Sheet) AddGroup(g plugin.Group) error {
	responsive := false
	var states []string
	for _, v := range g.Variants {
		switch {
		case v == Responsive:
			responsive = true
		case IsKnownVariant(v):
			states = append(states, v)
		default:
			return fmt.Errorf("family %s: unknown variant %q", g.Family, v)
		}
	}

	entries := g.Utilities.Entries()
	s.addExpanded(s.base, "", g.Family, entries, states)
	if responsive {
		for _, screen := range s.screens {
			s.addExpanded(s.media[screen.Key], screen.Key+":", g.Family, entries, states)
		}
	}
	return nil
}

func (s *Sheet) addExpanded(b *block, prefix, family string, entries []utility.Entry, states []string) {
	for _, e := range entries {
		s.add(b, variantRule(prefix, "", e, family))
	}
	for _, state := range states {
		for _, e := range entries {
			s.add(b, variantRule(prefix, state, e, family))
		}
	}
}

// variantRule builds the rule for entry under an optional screen prefix
// ("sm:") and state variant ("hover").
func variantRule(prefix, state string, e utility.Entry, family string) Rule {
	if prefix == "" && state == "" {
		return Rule{Token: e.Token, Selector: e.Selector, Family: family, Declaration: e.Declaration}
	}

	token := e.Token
	if state != "" {
		token = state + ":" + token
	}
	token = prefix + token
	class := "." + cssesc.Class(token)

	var selector string
	switch {
	case state == GroupHover:
		selector = ".group:hover " + class + e.Scope
	case state != "":
		selector = class + pseudoVariants[state] + e.Scope
	default:
		selector = class + e.Scope
	}
	return Rule{Token: token, Selector: selector, Family: family, Declaration: e.Declaration}
}

func (s *Sheet) add(b *block, r Rule) {
	if _, exists := b.rules[r.Selector]; exists {
		s.log.WithFields(map[string]any{"selector": r.Selector, "family": r.Family}).
			Warn("duplicate selector; later declaration wins")
	} else {
		b.order = append(b.order, r.Selector)
	}
	b.rules[r.Selector] = r
}

// Rules returns the base rules followed by each screen's rules, in order.
func (s *Sheet) Rules() []Rule {
	var out []Rule
	out = append(out, s.base.list()...)
	for _, screen := range s.screens {
		out = append(out, s.media[screen.Key].list()...)
	}
	return out
}

// Len returns the total number of rules.
func (s *Sheet) Len() int {
	n := len(s.base.order)
	for _, b := range s.media {
		n += len(b.order)
	}
	return n
}

// Filter returns a new sheet holding only rules whose token keep accepts.
func (s *Sheet) Filter(keep func(token string) bool) *Sheet {
	out := &Sheet{
		screens: s.screens,
		base:    s.base.filter(keep),
		media:   make(map[string]*block, len(s.media)),
		log:     s.log,
	}
	for name, b := range s.media {
		out.media[name] = b.filter(keep)
	}
	return out
}

// Render writes the sheet as CSS. Empty screen blocks are omitted.
func (s *Sheet) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	first := true
	for _, r := range s.base.list() {
		if !first {
			bw.WriteString("\n")
		}
		first = false
		writeRule(bw, "", r)
	}

	for _, screen := range s.screens {
		rules := s.media[screen.Key].list()
		if len(rules) == 0 {
			continue
		}
		if !first {
			bw.WriteString("\n")
		}
		first = false

		fmt.Fprintf(bw, "@media (min-width: %s) {\n", screen.Value)
		for i, r := range rules {
			if i > 0 {
				bw.WriteString("\n")
			}
			writeRule(bw, "  ", r)
		}
		bw.WriteString("}\n")
	}

	return bw.Flush()
}

func writeRule(w *bufio.Writer, indent string, r Rule) {
	fmt.Fprintf(w, "%s%s {\n", indent, r.Selector)
	for _, p := range r.Declaration {
		fmt.Fprintf(w, "%s  %s: %s;\n", indent, p.Name, p.Value)
	}
	fmt.Fprintf(w, "%s}\n", indent)
}

func (b *block) list() []Rule {
	out := make([]Rule, 0, len(b.order))
	for _, sel := range b.order {
		out = append(out, b.rules[sel])
	}
	return out
}

func (b *block) filter(keep func(string) bool) *block {
	out := newBlock()
	for _, sel := range b.order {
		r := b.rules[sel]
		if keep(r.Token) {
			out.order = append(out.order, sel)
			out.rules[sel] = r
		}
	}
	return out
}
