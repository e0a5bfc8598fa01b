// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// impl_states.go - sector tables and site tensors for one state.
//
// Sector policy per Symmetry:
//   - Trivial: virtual {0: dim}, physical {0: physicalDim}.
//   - U1:      virtual {q+shift: dim | q = 0..maxCharge}, physical {0:1, 1:1};
//              a block exists iff q(leg0) + q(leg1) = q(leg2).
//   - Z2:      every bond {0: dim, 1: dim} (physical dims 1);
//              a block exists iff parities add up.
//
// Boundary bonds always carry the trivial descriptor. Dimensions are
// drawn from [minDim, maxDim] bond by bond in bond order.

package builder

import (
	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/overlap"
	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

// groups returns the symmetry groups of the policy.
func (c builderConfig) groups() []symsec.Group {
	switch c.symmetry {
	case SymmetryU1:
		return []symsec.Group{symsec.U1}
	case SymmetryZ2:
		return []symsec.Group{symsec.Z2}
	default:
		return nil
	}
}

// virtualSectors draws the descriptor of one inner bond.
func (c builderConfig) virtualSectors(shift int) (*symsec.Sectors, error) {
	var labels []symsec.Label
	switch c.symmetry {
	case SymmetryU1:
		for q := 0; q <= c.maxCharge; q++ {
			labels = append(labels, symsec.L(q+shift))
		}
	case SymmetryZ2:
		labels = []symsec.Label{symsec.L(0), symsec.L(1)}
	default:
		labels = []symsec.Label{symsec.L(shift)}
	}
	dims := make([]int, len(labels))
	for i := range dims {
		dims[i] = c.drawDim()
	}
	return symsec.NewSectors(labels, dims)
}

// physicalSectors returns the descriptor of one physical bond.
func (c builderConfig) physicalSectors() (*symsec.Sectors, error) {
	if c.symmetry == SymmetryTrivial {
		return symsec.NewSectors([]symsec.Label{symsec.L(0)}, []int{c.physicalDim})
	}
	return symsec.NewSectors([]symsec.Label{symsec.L(0), symsec.L(1)}, []int{1, 1})
}

// bookkeeper builds the sector tables of one state on tree; shift moves
// every inner virtual label.
func (c builderConfig) bookkeeper(tree *network.Tree, shift int) (*symsec.Bookkeeper, error) {
	virtual := make([]*symsec.Sectors, tree.NrBonds())
	for b := range virtual {
		if tree.Bond(b).IsBoundary() {
			virtual[b] = symsec.Trivial()
			continue
		}
		s, err := c.virtualSectors(shift)
		if err != nil {
			return nil, err
		}
		virtual[b] = s
	}
	physical := make([]*symsec.Sectors, tree.NrPhysical())
	for p := range physical {
		s, err := c.physicalSectors()
		if err != nil {
			return nil, err
		}
		physical[p] = s
	}
	return symsec.NewBookkeeper(c.groups(), virtual, physical)
}

// rule returns the block selection rule for a site with legs hs.
func (c builderConfig) rule(hs [3]symsec.Handle) func(idx [3]int) bool {
	charge := func(l, i int) int { return hs[l].Sectors().Label(i)[0] }
	switch c.symmetry {
	case SymmetryU1:
		return func(idx [3]int) bool {
			return charge(0, idx[0])+charge(1, idx[1]) == charge(2, idx[2])
		}
	case SymmetryZ2:
		return func(idx [3]int) bool {
			return (charge(0, idx[0])+charge(1, idx[1])+charge(2, idx[2]))%2 == 0
		}
	default:
		return nil
	}
}

// tensors builds one filled site tensor per site of tree.
func (c builderConfig) tensors(tree *network.Tree, book *symsec.Bookkeeper) ([]*tensor.SiteTensor, error) {
	out := make([]*tensor.SiteTensor, tree.NrSites())
	for s := range out {
		hs := overlap.LegHandles(tree, book, s)
		var (
			shape tensor.Shape
			dims  [3][]int
		)
		for l, h := range hs {
			shape[l] = h.Sectors().Len()
			dims[l] = h.Sectors().Dims()
		}
		t, err := tensor.NewSiteTensor(shape, dims, c.rule(hs))
		if err != nil {
			return nil, err
		}
		d := t.Data()
		for i := range d {
			d[i] = c.valueFn(c.rng)
		}
		out[s] = t
	}
	return out, nil
}
