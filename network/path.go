// SPDX-License-Identifier: MIT

package network

import "github.com/eapache/queue"

// Path returns the unique site path from -> to, both ends included.
//
// Implementation:
//   - Breadth-first search over site-site bonds with a FIFO queue,
//     recording parents, then walking parents back from to.
//
// Errors: ErrSiteOutOfRange.
// Complexity: O(V).
func (t *Tree) Path(from, to int) ([]int, error) {
	if err := t.checkSite(from); err != nil {
		return nil, err
	}
	if err := t.checkSite(to); err != nil {
		return nil, err
	}

	parent := make([]int, t.NrSites())
	for i := range parent {
		parent[i] = Boundary
	}
	parent[from] = from
	q := queue.New()
	q.Add(from)
	for q.Length() > 0 {
		s := q.Remove().(int)
		if s == to {
			break
		}
		for _, nb := range t.neighbors[s] {
			if parent[nb] == Boundary {
				parent[nb] = s
				q.Add(nb)
			}
		}
	}

	var rev []int
	for s := to; s != from; s = parent[s] {
		rev = append(rev, s)
	}
	rev = append(rev, from)
	path := make([]int, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path, nil
}

// Distance returns the number of bonds between sites a and b.
func (t *Tree) Distance(a, b int) (int, error) {
	p, err := t.Path(a, b)
	if err != nil {
		return 0, err
	}
	return len(p) - 1, nil
}
