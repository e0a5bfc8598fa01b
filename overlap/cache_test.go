// SPDX-License-Identifier: MIT

package overlap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/overlap"
	"github.com/katalvlaran/lvtns/symsec"
)

// graded returns two single-bond bookkeepers: reference {0:2, 1:3},
// optimizing {1:4, 2:1}.
func graded(t *testing.T) (ref, opt symsec.Handle) {
	t.Helper()
	rb, err := symsec.NewBookkeeper([]symsec.Group{symsec.U1},
		[]*symsec.Sectors{symsec.MustSectors([]symsec.Label{symsec.L(0), symsec.L(1)}, []int{2, 3})}, nil)
	require.NoError(t, err)
	ob, err := symsec.NewBookkeeper([]symsec.Group{symsec.U1},
		[]*symsec.Sectors{symsec.MustSectors([]symsec.Label{symsec.L(1), symsec.L(2)}, []int{4, 1})}, nil)
	require.NoError(t, err)
	return rb.Virtual(0), ob.Virtual(0)
}

func TestCache_PartialMismatch(t *testing.T) {
	ref, opt := graded(t)
	c := overlap.NewCache(ref, opt, 0)
	assert.Equal(t, 5*5, c.AllocSize()) // refTotal · optTotal
	assert.Equal(t, network.Boundary, c.Toward())

	m := symsec.NewMatcher(2)
	c.RenewBlockLayout(m.Match(ref.Sectors(), opt.Sectors()), true)

	assert.Equal(t, 3*4, c.UsedSize())
	assert.Equal(t, overlap.Absent, c.Block(0).Offset) // label 0 unmatched
	assert.Nil(t, c.BlockData(0))
	b := c.Block(1)
	assert.Equal(t, overlap.CacheBlock{Offset: 0, LDim: 3, SDim: 4, Opt: 0}, b)
	assert.Equal(t, overlap.Absent, c.Block(2).Offset) // out of range
	assert.Equal(t, overlap.Absent, c.Block(-1).Offset)
}

func TestCache_NoMatchIsEmpty(t *testing.T) {
	ref, _ := graded(t)
	other := symsec.MustSectors([]symsec.Label{symsec.L(9)}, []int{2})
	ob, err := symsec.NewBookkeeper(nil, []*symsec.Sectors{other}, nil)
	require.NoError(t, err)

	c := overlap.NewCache(ref, ob.Virtual(0), 0)
	c.RenewBlockLayout(symsec.NewMatcher(0).Match(ref.Sectors(), other), true)
	assert.Zero(t, c.UsedSize())
	for i := 0; i < c.NrSectors(); i++ {
		assert.Equal(t, overlap.Absent, c.Block(i).Offset)
	}
}

func TestCache_GrowsAndReserve(t *testing.T) {
	ref, opt := graded(t)
	c := overlap.NewCache(ref, opt, 1) // room for 5 elements only
	require.Equal(t, 5, c.AllocSize())

	c.RenewBlockLayout([]symsec.Pair{{Ref: 1, Opt: 0}}, true)
	assert.Equal(t, 12, c.UsedSize())
	assert.GreaterOrEqual(t, c.AllocSize(), 24) // at least twice the need

	before := c.AllocSize()
	c.Reserve(1) // never shrinks
	assert.Equal(t, before, c.AllocSize())
	c.Reserve(10)
	assert.Equal(t, 50, c.AllocSize())
	assert.Equal(t, 12, c.UsedSize())
}

func TestCache_IdentityAndClone(t *testing.T) {
	ref, opt := graded(t)
	c := overlap.NewCache(ref, opt, 0)
	c.SetIdentity([]symsec.Pair{{Ref: 1, Opt: 0}})

	data := c.BlockData(1) // 3x4 column-major
	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, data[i+3*j], "(%d,%d)", i, j)
		}
	}

	cl := c.Clone()
	cl.BlockData(1)[0] = 42
	assert.Equal(t, 1.0, c.BlockData(1)[0]) // deep copy

	dst := overlap.NewCache(ref, opt, 1)
	dst.CopyFrom(cl)
	assert.Equal(t, cl.Data(), dst.Data())
	assert.Equal(t, cl.Block(1), dst.Block(1))
	assert.Contains(t, c.String(), "sector 1 -> 0 (3x4)")
}
