// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

// VectorBlock locates one block of an OverlapVector.
type VectorBlock struct {
	Sectors [4]int
	Offset  int
	Dims    [4]int
}

// OverlapVector is the block-sparse four-leg result of a two-site
// overlap. Its legs are the two open legs of center[0] in leg order,
// then those of center[1]. Blocks are sorted with the last leg's sector
// most significant; each block is column-major.
type OverlapVector struct {
	center Center
	legs   [4]symsec.Handle
	blocks []VectorBlock
	data   []float64
}

// Center returns the center the vector was computed for.
func (v *OverlapVector) Center() Center { return v.center }

// Legs returns the descriptor handles of the four legs.
func (v *OverlapVector) Legs() [4]symsec.Handle { return v.legs }

// NrBlocks returns the number of blocks.
func (v *OverlapVector) NrBlocks() int { return len(v.blocks) }

// Block returns block n.
func (v *OverlapVector) Block(n int) VectorBlock { return v.blocks[n] }

// BlockData returns the elements of block n (a view).
func (v *OverlapVector) BlockData(n int) []float64 {
	b := v.blocks[n]
	return v.data[b.Offset : b.Offset+b.Dims[0]*b.Dims[1]*b.Dims[2]*b.Dims[3]]
}

// Search returns the block with the given sector indices, or -1.
func (v *OverlapVector) Search(sectors [4]int) int {
	n := sort.Search(len(v.blocks), func(i int) bool { return !lessKey(v.blocks[i].Sectors, sectors) })
	if n < len(v.blocks) && v.blocks[n].Sectors == sectors {
		return n
	}
	return -1
}

// Len returns the number of elements.
func (v *OverlapVector) Len() int { return len(v.data) }

// Data returns the elements in block order (a view).
func (v *OverlapVector) Data() []float64 { return v.data }

// Vector returns a copy of the elements as one flat vector.
func (v *OverlapVector) Vector() []float64 { return append([]float64(nil), v.data...) }

// Norm returns the Euclidean norm.
func (v *OverlapVector) Norm() float64 {
	s := 0.0
	for _, x := range v.data {
		s += x * x
	}
	return math.Sqrt(s)
}

// Dot returns Σ v[i]·x[i] for a flat x laid out like Vector(), typically
// the optimizing two-site tensor of the same center.
//
// Errors: ErrVectorLength.
func (v *OverlapVector) Dot(x []float64) (float64, error) {
	if len(x) != len(v.data) {
		return 0, fmt.Errorf("Dot: %d elements, vector has %d: %w", len(x), len(v.data), ErrVectorLength)
	}
	s := 0.0
	for i, e := range v.data {
		s += e * x[i]
	}
	return s, nil
}

// lessKey orders sector tuples with the last entry most significant.
func lessKey(a, b [4]int) bool {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// join contracts a (shared bond on leg la) with b (shared bond on leg lb).
// Both legs carry the reference descriptor of the shared bond, so blocks
// pair up by equal sector index. Each block of a is weighted by prefactor
// with Legs == 3.
func join(center Center, a *TensorInfo, la int, b *TensorInfo, lb int, prefactor PrefactorFunc) *OverlapVector {
	a0, a1 := tensor.OtherLegs(la)
	b0, b1 := tensor.OtherLegs(lb)
	v := &OverlapVector{
		center: center,
		legs:   [4]symsec.Handle{a.Leg(a0), a.Leg(a1), b.Leg(b0), b.Leg(b1)},
	}

	byShared := make(map[int][]int)
	for n := 0; n < b.NrBlocks(); n++ {
		s := b.Data().Sectors(n)[lb]
		byShared[s] = append(byShared[s], n)
	}

	index := make(map[[4]int]int)
	for m := 0; m < a.NrBlocks(); m++ {
		ia := a.Data().Sectors(m)
		for _, n := range byShared[ia[la]] {
			ib := b.Data().Sectors(n)
			key := [4]int{ia[a0], ia[a1], ib[b0], ib[b1]}
			if _, ok := index[key]; !ok {
				index[key] = -1
				v.blocks = append(v.blocks, VectorBlock{Sectors: key})
			}
		}
	}
	sort.Slice(v.blocks, func(i, j int) bool { return lessKey(v.blocks[i].Sectors, v.blocks[j].Sectors) })

	size := 0
	for n := range v.blocks {
		blk := &v.blocks[n]
		for l := 0; l < 4; l++ {
			blk.Dims[l] = v.legs[l].Sectors().Dim(blk.Sectors[l])
		}
		blk.Offset = size
		size += blk.Dims[0] * blk.Dims[1] * blk.Dims[2] * blk.Dims[3]
		index[blk.Sectors] = n
	}
	v.data = make([]float64, size)

	for m := 0; m < a.NrBlocks(); m++ {
		ba := a.Block(m)
		pairs := byShared[ba.Sectors[la]]
		if len(pairs) == 0 {
			continue
		}
		alpha := prefactor(Coupling{Legs: 3, Leg: la, Labels: a.labels(ba.Sectors), Physical: a.physical})
		for _, n := range pairs {
			bb := b.Block(n)
			key := [4]int{ba.Sectors[a0], ba.Sectors[a1], bb.Sectors[b0], bb.Sectors[b1]}
			tensor.AddJoin(alpha, a.BlockData(m), ba.Dims, la, b.BlockData(n), bb.Dims, lb,
				v.BlockData(index[key]), v.blocks[index[key]].Dims)
		}
	}
	return v
}
