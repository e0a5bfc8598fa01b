// SPDX-License-Identifier: MIT

package network

// SweepCenters returns a two-site sweep over the tree starting at start:
// a depth-first walk that visits every site-site bond, emitting the pair
// {parent, child} on the way down and again on the way back up when the
// child has a subtree of its own. Consecutive pairs always share exactly
// one site, so the result is a valid sequence of adjacent two-site centers.
//
// A single-site tree yields an empty sweep.
//
// Errors: ErrSiteOutOfRange.
// Complexity: O(V).
func (t *Tree) SweepCenters(start int) ([][2]int, error) {
	if err := t.checkSite(start); err != nil {
		return nil, err
	}
	w := &sweeper{tree: t, seen: make([]bool, t.NrSites())}
	w.visit(start)
	return w.out, nil
}

// sweeper holds the DFS state of SweepCenters.
type sweeper struct {
	tree *Tree
	seen []bool
	out  [][2]int
}

// visit descends into every unseen neighbor of s in ascending order.
func (w *sweeper) visit(s int) {
	w.seen[s] = true
	for _, nb := range w.tree.neighbors[s] {
		if w.seen[nb] {
			continue
		}
		w.out = append(w.out, [2]int{s, nb})
		before := len(w.out)
		w.visit(nb)
		if len(w.out) > before {
			w.out = append(w.out, [2]int{s, nb})
		}
	}
}
