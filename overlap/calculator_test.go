// SPDX-License-Identifier: MIT

package overlap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtns/builder"
	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/overlap"
	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

func TestBuild_TopologyGuard(t *testing.T) {
	three := fixture(t, builder.Chain(3))
	four := fixture(t, builder.Chain(4))

	_, err := overlap.Build(four.Opt, three.Ref, three.Tree)
	assert.ErrorIs(t, err, overlap.ErrTopologyMismatch)

	_, err = overlap.Build(three.Opt, three.Ref, four.Tree)
	assert.ErrorIs(t, err, overlap.ErrTopologyMismatch)

	_, err = overlap.Build(three.Opt, three.Ref, nil)
	assert.ErrorIs(t, err, overlap.ErrNilNetwork)

	_, err = overlap.Build(overlap.State{}, three.Ref, three.Tree)
	assert.ErrorIs(t, err, overlap.ErrNilState)
}

func TestBuild_LayoutGuard(t *testing.T) {
	fx := fixture(t, builder.Chain(3), builder.WithU1(1))
	bad := fx.Ref
	bad.Tensors = append([]*tensor.SiteTensor(nil), fx.Ref.Tensors...)
	bad.Tensors[1] = tensor.New(tensor.Shape{1, 1, 1})
	_, err := overlap.Build(fx.Opt, bad, fx.Tree)
	assert.ErrorIs(t, err, tensor.ErrLayoutMismatch)
}

func TestBuild_BoundaryCachesAreIdentity(t *testing.T) {
	fx := fixture(t, builder.Chain(3), builder.WithBoundaryBonds())
	c, err := overlap.Build(fx.Opt, fx.Ref, fx.Tree)
	require.NoError(t, err)
	assert.Equal(t, overlap.VariantGeneric, c.Variant())

	for b := 0; b < fx.Tree.NrBonds(); b++ {
		bd := fx.Tree.Bond(b)
		cache := c.Cache(b)
		if !bd.IsBoundary() {
			assert.Equal(t, network.Boundary, cache.Toward(), "bond %d", b)
			continue
		}
		assert.Equal(t, []float64{1}, cache.Data(), "bond %d", b)
		assert.True(t, cache.Toward() == bd.From || cache.Toward() == bd.To)
		assert.NotEqual(t, network.Boundary, cache.Toward())
	}
}

func TestLinks(t *testing.T) {
	fx := fixture(t, builder.Chain(3))
	c, err := overlap.Build(fx.Opt, fx.Ref, fx.Tree)
	require.NoError(t, err)

	in, err := c.InternalLink(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, in.Bond)
	assert.Equal(t, 2, in.Leg)
	assert.Same(t, c.Cache(1), in.Cache())

	var seen []int
	ext, err := c.ExternalLinks(1, 2, func(nb int, l overlap.Link) error {
		seen = append(seen, nb)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, ext, 1)
	assert.Equal(t, 0, ext[0].Bond)
	assert.Equal(t, 0, ext[0].Leg)
	assert.Equal(t, []int{0}, seen)

	ext, err = c.ExternalLinks(0, 1, nil) // leaf: physical and boundary legs only
	require.NoError(t, err)
	assert.Empty(t, ext)

	_, err = c.InternalLink(0, 2)
	assert.ErrorIs(t, err, overlap.ErrNotAdjacent)

	boom := errors.New("boom")
	_, err = c.ExternalLinks(1, 0, func(int, overlap.Link) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestChainContract_Dispatch(t *testing.T) {
	fx := fixture(t, builder.Star(1), builder.WithU1(1), builder.WithSeed(5))
	c, err := overlap.Build(fx.Opt, fx.Ref, fx.Tree)
	require.NoError(t, err)
	hub := 3

	triv := fx.Ref.Book.Trivial()

	ext, err := c.ExternalLinks(hub, 2, nil)
	require.NoError(t, err)
	require.Len(t, ext, 2)
	err = c.ChainContract(c.Pair(hub).Ref, append(ext, ext[0]), scratch(t, triv), scratch(t, triv))
	assert.ErrorIs(t, err, overlap.ErrTooManyLinks)
	err = c.ChainContract(c.Pair(hub).Ref, ext, nil, scratch(t, triv))
	assert.ErrorIs(t, err, overlap.ErrNilTensorInfo)

	res := scratch(t, triv)
	require.NoError(t, c.ChainContract(c.Pair(hub).Ref, ext, scratch(t, triv), res))
	assert.Equal(t, fx.Opt.Book.Virtual(0), res.Leg(0))
	assert.Equal(t, fx.Opt.Book.Virtual(1), res.Leg(1))
	assert.Equal(t, c.Pair(hub).Ref.Leg(2), res.Leg(2))

	ref := c.Pair(0).Ref
	out := scratch(t, triv)
	require.NoError(t, c.ChainContract(ref, nil, nil, out))
	assert.Equal(t, ref.Data().Data(), out.Data().Data()) // copy
	assert.Equal(t, ref.Legs(), out.Legs())
	assert.NotSame(t, ref.Data(), out.Data())
}

func TestOneLegContract_LinkMismatch(t *testing.T) {
	fx := fixture(t, builder.Chain(3))
	c, err := overlap.Build(fx.Opt, fx.Ref, fx.Tree)
	require.NoError(t, err)

	wrong, err := c.InternalLink(1, 2) // bond 1 sits on leg 2 of site 1
	require.NoError(t, err)
	wrong.Leg = 0
	err = c.OneLegContract(c.Pair(1).Ref, wrong, scratch(t, fx.Ref.Book.Trivial()))
	assert.ErrorIs(t, err, overlap.ErrLinkMismatch)

	err = c.RebuildCache(c.Pair(1).Ref, c.Pair(1).Opt, 0, c.Cache(1))
	assert.ErrorIs(t, err, overlap.ErrLinkMismatch)
}

func TestRenewBlockLayout_BranchingAndMirror(t *testing.T) {
	fx := fixture(t, builder.Chain(3), builder.WithU1(1), builder.WithBondDims(2, 2))
	c, err := overlap.Build(fx.Opt, fx.Ref, fx.Tree)
	require.NoError(t, err)

	ref := c.Pair(1).Ref
	full := scratch(t, fx.Ref.Book.Trivial())
	full.CopyFrom(ref)
	require.NoError(t, full.RenewBlockLayout(nil, true))
	// Every (in, phys, out) combination of 2x2x2 sectors with positive volume.
	assert.Equal(t, 8, full.NrBlocks())
	assert.Equal(t, 8*2*1*2, full.UsedSize())

	mirror := scratch(t, fx.Ref.Book.Trivial())
	mirror.CopyFrom(ref)
	require.NoError(t, mirror.RenewBlockLayout(ref, true))
	assert.Equal(t, ref.NrBlocks(), mirror.NrBlocks())
	for n := 0; n < ref.NrBlocks(); n++ {
		assert.Equal(t, ref.Block(n).Sectors, mirror.Block(n).Sectors)
	}
	assert.Equal(t, overlap.Absent, mirror.Block(99).Offset)
	assert.Equal(t, overlap.Absent, mirror.BlockAt([3]int{0, 1, 0}).Offset) // 0+1 != 0
	assert.Contains(t, mirror.String(), "TensorInfo physical=true")
}

func TestBuild_WarnsOnNonAbelian(t *testing.T) {
	fx := fixture(t, builder.Chain(3))
	su2 := func(bk *symsec.Bookkeeper) *symsec.Bookkeeper {
		virtual := make([]*symsec.Sectors, bk.NrBonds())
		for b := range virtual {
			virtual[b] = bk.Virtual(b).Sectors()
		}
		physical := make([]*symsec.Sectors, bk.NrPhysical())
		for p := range physical {
			physical[p] = bk.Physical(p).Sectors()
		}
		out, err := symsec.NewBookkeeper([]symsec.Group{symsec.SU2}, virtual, physical)
		require.NoError(t, err)
		return out
	}
	ref := overlap.State{Tensors: fx.Ref.Tensors, Book: su2(fx.Ref.Book)}
	opt := overlap.State{Tensors: fx.Opt.Tensors, Book: su2(fx.Opt.Book)}

	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := overlap.Build(opt, ref, fx.Tree, overlap.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("overlap calculator built").Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	obs, logs = observer.New(zapcore.DebugLevel)
	_, err = overlap.Build(opt, ref, fx.Tree,
		overlap.WithLogger(zap.New(obs)), overlap.WithPrefactor(overlap.CanonicalGauge))
	require.NoError(t, err)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { overlap.WithLogger(nil) })
	assert.Panics(t, func() { overlap.WithCapacityHint(-1) })
	assert.Panics(t, func() { overlap.WithWorkers(0) })
	assert.Panics(t, func() { overlap.WithPrefactor(nil) })
}

// scratch returns an empty owned info usable as a contraction target.
func scratch(t *testing.T, triv symsec.Handle) *overlap.TensorInfo {
	t.Helper()
	ti, err := overlap.NewTensorInfo(tensor.New(tensor.Shape{1, 1, 1}), [3]symsec.Handle{triv, triv, triv}, false)
	require.NoError(t, err)
	return ti
}
