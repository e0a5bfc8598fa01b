// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"

	"github.com/eapache/queue"
)

// Degree limits per site kind.
const (
	maxInPhysical  = 1
	maxInBranching = 2
	maxOut         = 1
)

// New builds a Tree from per-site physical flags and the bond list.
// Site i is physical when physical[i] is true; physical sites are
// numbered in site order for their physical bond index.
//
// Errors:
//   - ErrNoSites for an empty physical slice.
//   - ErrSiteOutOfRange for an endpoint outside [Boundary, len(physical)).
//   - ErrSelfLoop for From == To.
//   - ErrDegree when a site exceeds its incoming/outgoing limit.
//   - ErrNotTree when the site graph is disconnected or cyclic.
//
// Complexity: O(V + E log E).
func New(physical []bool, bonds []Bond) (*Tree, error) {
	n := len(physical)
	if n == 0 {
		return nil, ErrNoSites
	}

	t := &Tree{
		physical:  append([]bool(nil), physical...),
		physIndex: make([]int, n),
		bonds:     append([]Bond(nil), bonds...),
		legs:      make([][3]Leg, n),
		neighbors: make([][]int, n),
	}
	p := 0
	for s := range physical {
		t.physIndex[s] = Boundary
		if physical[s] {
			t.physIndex[s] = p
			p++
		}
	}

	in := make([][]int, n)
	out := make([][]int, n)
	inner := 0
	for b, bd := range bonds {
		if bd.From < Boundary || bd.From >= n || bd.To < Boundary || bd.To >= n {
			return nil, fmt.Errorf("network: bond %d %v: %w", b, bd, ErrSiteOutOfRange)
		}
		if bd.From == bd.To {
			return nil, fmt.Errorf("network: bond %d %v: %w", b, bd, ErrSelfLoop)
		}
		if bd.From != Boundary {
			out[bd.From] = append(out[bd.From], b)
		}
		if bd.To != Boundary {
			in[bd.To] = append(in[bd.To], b)
		}
		if !bd.IsBoundary() {
			inner++
			t.neighbors[bd.From] = append(t.neighbors[bd.From], bd.To)
			t.neighbors[bd.To] = append(t.neighbors[bd.To], bd.From)
		}
	}

	for s := 0; s < n; s++ {
		maxIn := maxInBranching
		if physical[s] {
			maxIn = maxInPhysical
		}
		if len(in[s]) > maxIn || len(out[s]) > maxOut {
			return nil, fmt.Errorf("network: site %d has %d in / %d out: %w", s, len(in[s]), len(out[s]), ErrDegree)
		}
		t.legs[s] = siteLegs(physical[s], t.physIndex[s], in[s], out[s])
		sort.Ints(t.neighbors[s])
	}

	if inner != n-1 || t.reachable(0) != n {
		return nil, fmt.Errorf("network: %d sites, %d site-site bonds: %w", n, inner, ErrNotTree)
	}

	return t, nil
}

// siteLegs lays out the three legs of one site.
func siteLegs(physical bool, pidx int, in, out []int) [3]Leg {
	legs := [3]Leg{
		{Kind: LegBoundary, Bond: Boundary},
		{Kind: LegBoundary, Bond: Boundary},
		{Kind: LegBoundary, Bond: Boundary},
	}
	if len(out) == 1 {
		legs[2] = Leg{Kind: LegVirtual, Bond: out[0]}
	}
	if physical {
		legs[1] = Leg{Kind: LegPhysical, Bond: pidx}
		if len(in) == 1 {
			legs[0] = Leg{Kind: LegVirtual, Bond: in[0]}
		}
		return legs
	}
	for i, b := range in {
		legs[i] = Leg{Kind: LegVirtual, Bond: b}
	}
	return legs
}

// reachable counts the sites reachable from start over site-site bonds.
func (t *Tree) reachable(start int) int {
	seen := make([]bool, len(t.legs))
	q := queue.New()
	q.Add(start)
	seen[start] = true
	count := 0
	for q.Length() > 0 {
		s := q.Remove().(int)
		count++
		for _, nb := range t.neighbors[s] {
			if !seen[nb] {
				seen[nb] = true
				q.Add(nb)
			}
		}
	}
	return count
}
