// SPDX-License-Identifier: MIT

package symsec

// Pair maps a reference sector index to the optimizing sector index
// carrying the same label.
type Pair struct {
	Ref int
	Opt int
}

// Matcher computes the label correspondence between a reference and an
// optimizing descriptor. Its result buffer only grows; Match reuses it,
// so the slice returned by Match is valid until the next call.
type Matcher struct {
	pairs []Pair
}

// NewMatcher returns a matcher whose buffer holds capacity pairs.
// Panics on negative capacity.
func NewMatcher(capacity int) *Matcher {
	if capacity < 0 {
		panic("symsec: NewMatcher(capacity<0)")
	}
	return &Matcher{pairs: make([]Pair, 0, capacity)}
}

// Reserve grows the buffer to at least n pairs. It never shrinks.
func (m *Matcher) Reserve(n int) {
	if n <= cap(m.pairs) {
		return
	}
	grown := make([]Pair, len(m.pairs), n)
	copy(grown, m.pairs)
	m.pairs = grown
}

// Match records, for every reference sector in ascending index order,
// the optimizing sector with an identical label. Reference sectors
// without a partner are skipped. An empty result is not an error.
//
// Complexity: O(ref.Len() · log opt.Len()).
func (m *Matcher) Match(ref, opt *Sectors) []Pair {
	m.Reserve(ref.Len())
	m.pairs = m.pairs[:0]
	for i := 0; i < ref.Len(); i++ {
		if j := opt.Search(ref.Label(i)); j >= 0 {
			m.pairs = append(m.pairs, Pair{Ref: i, Opt: j})
		}
	}
	return m.pairs
}

// Result returns the pairs of the last Match.
func (m *Matcher) Result() []Pair { return m.pairs }

// Len returns the number of pairs of the last Match.
func (m *Matcher) Len() int { return len(m.pairs) }

// Cap returns the buffer capacity.
func (m *Matcher) Cap() int { return cap(m.pairs) }
