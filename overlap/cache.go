// SPDX-License-Identifier: MIT

// Package overlap - bond overlap caches.
//
// A Cache holds, for one virtual bond, the contraction of everything on
// one side of the bond: a matrix block per reference sector, with the
// reference dimension as rows (ldim) and the dimension of the
// label-matched optimizing sector as columns (sdim), column-major.
//
// Layout bookkeeping is per reference sector i:
//   - begin[i]: element offset or Absent,
//   - ldim[i], sdim[i]: block extents,
//   - opt[i]: matched optimizing sector or -1.
//
// Storage starts at refTotal·(hint or optTotal) elements and only grows,
// to twice the required size when a layout does not fit.

package overlap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/symsec"
)

// CacheBlock locates the block of one reference sector.
// Offset is Absent (and the other fields zero or -1) when there is none.
type CacheBlock struct {
	Offset int
	LDim   int
	SDim   int
	Opt    int
}

var absentBlock = CacheBlock{Offset: Absent, Opt: -1}

// Cache is the overlap object of one bond.
type Cache struct {
	ref, opt symsec.Handle
	begin    []int
	ldim     []int
	sdim     []int
	optIdx   []int
	data     []float64
	used     int
	toward   int
}

// NewCache returns an empty cache for a bond carrying ref on the
// reference side and opt on the optimizing side. capacityHint > 0 sizes
// the store for that many optimizing columns per reference row.
func NewCache(ref, opt symsec.Handle, capacityHint int) *Cache {
	n := ref.Sectors().Len()
	cols := opt.Sectors().TotalDims()
	if capacityHint > 0 {
		cols = capacityHint
	}
	c := &Cache{
		ref:    ref,
		opt:    opt,
		begin:  make([]int, n),
		ldim:   make([]int, n),
		sdim:   make([]int, n),
		optIdx: make([]int, n),
		data:   make([]float64, ref.Sectors().TotalDims()*cols),
		toward: network.Boundary,
	}
	c.resetLayout()
	return c
}

// resetLayout marks every reference sector absent.
func (c *Cache) resetLayout() {
	for i := range c.begin {
		c.begin[i] = Absent
		c.ldim[i] = 0
		c.sdim[i] = 0
		c.optIdx[i] = -1
	}
	c.used = 0
}

// RenewBlockLayout lays out one block per matched pair of positive
// volume, in ascending reference sector order. Unmatched or empty sectors
// become absent. Elements are zeroed when setZero is true.
func (c *Cache) RenewBlockLayout(pairs []symsec.Pair, setZero bool) {
	c.resetLayout()
	ref, opt := c.ref.Sectors(), c.opt.Sectors()
	for _, p := range pairs {
		l, s := ref.Dim(p.Ref), opt.Dim(p.Opt)
		if l*s == 0 {
			continue
		}
		c.begin[p.Ref] = c.used
		c.ldim[p.Ref] = l
		c.sdim[p.Ref] = s
		c.optIdx[p.Ref] = p.Opt
		c.used += l * s
	}
	c.reserve(c.used)
	if setZero {
		clear(c.data[:c.used])
	}
}

// reserve grows the store to 2·n when it holds fewer than n elements.
// Contents are not preserved; callers relayout right before.
func (c *Cache) reserve(n int) {
	if n <= len(c.data) {
		return
	}
	c.data = make([]float64, 2*n)
}

// Reserve grows the store to refTotal·optDim elements when smaller.
// It never shrinks and keeps the current layout and contents.
func (c *Cache) Reserve(optDim int) {
	if n := c.ref.Sectors().TotalDims() * optDim; n > len(c.data) {
		grown := make([]float64, n)
		copy(grown, c.data[:c.used])
		c.data = grown
	}
}

// SetIdentity lays out pairs and writes the identity into every block:
// element (k,k) is 1 for k < min(ldim, sdim). Boundary bonds use it.
func (c *Cache) SetIdentity(pairs []symsec.Pair) {
	c.RenewBlockLayout(pairs, true)
	for i, off := range c.begin {
		if off == Absent {
			continue
		}
		for k := 0; k < min(c.ldim[i], c.sdim[i]); k++ {
			c.data[off+k+c.ldim[i]*k] = 1
		}
	}
}

// Block returns the block of reference sector i, or an absent block for
// an unmatched or out-of-range sector.
func (c *Cache) Block(i int) CacheBlock {
	if i < 0 || i >= len(c.begin) || c.begin[i] == Absent {
		return absentBlock
	}
	return CacheBlock{Offset: c.begin[i], LDim: c.ldim[i], SDim: c.sdim[i], Opt: c.optIdx[i]}
}

// BlockData returns the elements of reference sector i's block, nil when absent.
func (c *Cache) BlockData(i int) []float64 {
	b := c.Block(i)
	if b.Offset == Absent {
		return nil
	}
	return c.data[b.Offset : b.Offset+b.LDim*b.SDim]
}

// Data returns the used region of the store.
func (c *Cache) Data() []float64 { return c.data[:c.used] }

// Ref returns the reference descriptor handle.
func (c *Cache) Ref() symsec.Handle { return c.ref }

// Opt returns the optimizing descriptor handle.
func (c *Cache) Opt() symsec.Handle { return c.opt }

// NrSectors returns the number of reference sectors.
func (c *Cache) NrSectors() int { return len(c.begin) }

// UsedSize returns the element count covered by the layout.
func (c *Cache) UsedSize() int { return c.used }

// AllocSize returns the allocated element count.
func (c *Cache) AllocSize() int { return len(c.data) }

// Toward returns the site the cache was last contracted toward, or
// network.Boundary if it was never computed.
func (c *Cache) Toward() int { return c.toward }

// Clone returns an independent deep copy.
func (c *Cache) Clone() *Cache {
	d := &Cache{ref: c.ref, opt: c.opt, toward: c.toward, used: c.used}
	d.begin = append([]int(nil), c.begin...)
	d.ldim = append([]int(nil), c.ldim...)
	d.sdim = append([]int(nil), c.sdim...)
	d.optIdx = append([]int(nil), c.optIdx...)
	d.data = append([]float64(nil), c.data...)
	return d
}

// CopyFrom makes c a deep copy of src, reusing c's store when it fits.
func (c *Cache) CopyFrom(src *Cache) {
	c.ref, c.opt, c.toward = src.ref, src.opt, src.toward
	c.begin = append(c.begin[:0], src.begin...)
	c.ldim = append(c.ldim[:0], src.ldim...)
	c.sdim = append(c.sdim[:0], src.sdim...)
	c.optIdx = append(c.optIdx[:0], src.optIdx...)
	if len(c.data) < len(src.data) {
		c.data = make([]float64, len(src.data))
	}
	c.used = src.used
	copy(c.data[:c.used], src.data[:c.used])
}

// String dumps the block layout and contents.
func (c *Cache) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cache ref=%s opt=%s toward=%d used=%d alloc=%d", c.ref, c.opt, c.toward, c.used, len(c.data))
	for i := range c.begin {
		b := c.Block(i)
		if b.Offset == Absent {
			continue
		}
		fmt.Fprintf(&sb, "\n  sector %d -> %d (%dx%d): %v", i, b.Opt, b.LDim, b.SDim, c.BlockData(i))
	}
	return sb.String()
}
