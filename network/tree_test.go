// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtns/network"
)

const nb = network.Boundary

// chain returns 0→1→…→n-1 with physical sites only.
func chain(t *testing.T, n int) *network.Tree {
	t.Helper()
	phys := make([]bool, n)
	bonds := make([]network.Bond, 0, n-1)
	for i := range phys {
		phys[i] = true
		if i > 0 {
			bonds = append(bonds, network.Bond{From: i - 1, To: i})
		}
	}
	tr, err := network.New(phys, bonds)
	require.NoError(t, err)
	return tr
}

// fork returns the four-site tree 0→3, 1→3, 3→2 with branching site 3.
func fork(t *testing.T) *network.Tree {
	t.Helper()
	tr, err := network.New(
		[]bool{true, true, true, false},
		[]network.Bond{{From: 0, To: 3}, {From: 1, To: 3}, {From: 3, To: 2}},
	)
	require.NoError(t, err)
	return tr
}

func TestNew_ChainLegs(t *testing.T) {
	tr := chain(t, 3)
	assert.Equal(t, 3, tr.NrSites())
	assert.Equal(t, 2, tr.NrBonds())
	assert.Equal(t, 3, tr.NrPhysical())

	assert.Equal(t, [3]network.Leg{
		{Kind: network.LegBoundary, Bond: nb},
		{Kind: network.LegPhysical, Bond: 0},
		{Kind: network.LegVirtual, Bond: 0},
	}, tr.Legs(0))
	assert.Equal(t, [3]int{0, nb, 1}, tr.BondsOfSite(1))
	assert.Equal(t, [3]int{1, nb, nb}, tr.BondsOfSite(2))
	assert.True(t, tr.IsPhysicalLeg(2, 1))
	assert.False(t, tr.IsPhysicalLeg(2, 0))
	assert.Equal(t, 2, tr.PhysicalIndex(2))
}

func TestNew_BranchingLegs(t *testing.T) {
	tr := fork(t)
	assert.False(t, tr.IsPhysical(3))
	assert.Equal(t, nb, tr.PhysicalIndex(3))
	assert.Equal(t, [3]int{0, 1, 2}, tr.BondsOfSite(3)) // two incoming then outgoing
	assert.Equal(t, []int{0, 1, 2}, tr.Neighbors(3))
	assert.Equal(t, 2, tr.PhysicalIndex(2))
	assert.Equal(t, 2, tr.CommonBond(2, 3))
	assert.Equal(t, nb, tr.CommonBond(0, 1))
	assert.Equal(t, 3, tr.Other(1, 1))
}

func TestNew_BoundaryBonds(t *testing.T) {
	tr, err := network.New([]bool{true, true}, []network.Bond{
		{From: nb, To: 0}, {From: 0, To: 1}, {From: 1, To: nb},
	})
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, nb, 1}, tr.BondsOfSite(0))
	assert.Equal(t, [3]int{1, nb, 2}, tr.BondsOfSite(1))
	assert.True(t, tr.Bond(0).IsBoundary())
	assert.False(t, tr.Bond(1).IsBoundary())
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		phys  []bool
		bonds []network.Bond
		want  error
	}{
		{"empty", nil, nil, network.ErrNoSites},
		{"range", []bool{true, true}, []network.Bond{{From: 0, To: 2}}, network.ErrSiteOutOfRange},
		{"self", []bool{true, true}, []network.Bond{{From: 1, To: 1}}, network.ErrSelfLoop},
		{"degree", []bool{true, true, true}, []network.Bond{{From: 0, To: 2}, {From: 1, To: 2}}, network.ErrDegree},
		{"disconnected", []bool{true, true, true}, []network.Bond{{From: 0, To: 1}}, network.ErrNotTree},
		{"cycle", []bool{false, false, false}, []network.Bond{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, network.ErrNotTree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.New(tc.phys, tc.bonds)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPath(t *testing.T) {
	tr := fork(t)
	p, err := tr.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2}, p)

	p, err = tr.Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)

	d, err := chain(t, 5).Distance(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	_, err = tr.Path(0, 9)
	assert.ErrorIs(t, err, network.ErrSiteOutOfRange)
}

func TestSweepCenters_AdjacentAndComplete(t *testing.T) {
	for name, tr := range map[string]*network.Tree{"chain": chain(t, 5), "fork": fork(t)} {
		t.Run(name, func(t *testing.T) {
			sweep, err := tr.SweepCenters(0)
			require.NoError(t, err)

			covered := make(map[int]bool)
			for i, c := range sweep {
				require.True(t, tr.Adjacent(c[0], c[1]), "center %v", c)
				covered[tr.CommonBond(c[0], c[1])] = true
				if i == 0 {
					continue
				}
				prev := sweep[i-1]
				shared := 0
				for _, a := range prev {
					for _, b := range c {
						if a == b {
							shared++
						}
					}
				}
				assert.Equal(t, 1, shared, "step %d: %v -> %v", i, prev, c)
			}
			assert.Len(t, covered, tr.NrSites()-1)
		})
	}
}

func TestSweepCenters_ChainOrder(t *testing.T) {
	sweep, err := chain(t, 4).SweepCenters(0)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 2}, {0, 1}}, sweep)

	single := chain(t, 1)
	sweep, err = single.SweepCenters(0)
	require.NoError(t, err)
	assert.Empty(t, sweep)
}
