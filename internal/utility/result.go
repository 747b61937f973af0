package utility

// Result is an insertion-ordered map from selector to Entry.
type Result struct {
	order   []string
	entries map[string]Entry
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{entries: make(map[string]Entry)}
}

// Set stores e under its selector. An existing selector keeps its position
// and takes the new entry.
func (r *Result) Set(e Entry) {
	if _, ok := r.entries[e.Selector]; !ok {
		r.order = append(r.order, e.Selector)
	}
	r.entries[e.Selector] = e
}

// Len returns the number of distinct selectors.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Get returns the entry for selector.
func (r *Result) Get(selector string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.entries[selector]
	return e, ok
}

// Selectors returns the selectors in insertion order.
func (r *Result) Selectors() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Entries returns the entries in insertion order.
func (r *Result) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.order))
	for _, sel := range r.order {
		out = append(out, r.entries[sel])
	}
	return out
}

// Declarations returns selector -> declaration, the shape the stylesheet merges.
func (r *Result) Declarations() map[string]Declaration {
	if r == nil {
		return nil
	}
	out := make(map[string]Declaration, len(r.entries))
	for sel, e := range r.entries {
		out[sel] = e.Declaration
	}
	return out
}

// Concat appends the entries of others to r in order and returns r.
func (r *Result) Concat(others ...*Result) *Result {
	for _, o := range others {
		for _, e := range o.Entries() {
			r.Set(e)
		}
	}
	return r
}
