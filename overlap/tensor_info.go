// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

// Absent is the offset reported for a block that is not stored.
const Absent = -1

// BlockInfo locates one block of a TensorInfo.
// Offset is Absent when the block is not stored; Index is then -1.
type BlockInfo struct {
	Index   int
	Sectors [3]int
	Offset  int
	Dims    [3]int
}

// TensorInfo pairs a block-sparse site tensor with the sector descriptors
// of its three legs. Infos built by NewTensorInfo borrow the tensor of a
// state; scratch infos own theirs and are re-laid-out by the contraction
// routines.
type TensorInfo struct {
	legs     [3]symsec.Handle
	data     *tensor.SiteTensor
	physical bool
}

// NewTensorInfo wraps data with the descriptors of its legs.
//
// Errors:
//   - ErrNilTensorInfo if data is nil.
//   - tensor.ErrLayoutMismatch if a handle is invalid, the tensor shape
//     disagrees with the sector counts of legs, or a block volume
//     disagrees with the sector dimensions.
func NewTensorInfo(data *tensor.SiteTensor, legs [3]symsec.Handle, physical bool) (*TensorInfo, error) {
	if data == nil {
		return nil, ErrNilTensorInfo
	}
	ti := &TensorInfo{legs: legs, data: data, physical: physical}
	for l, h := range legs {
		if !h.Valid() {
			return nil, fmt.Errorf("TensorInfo leg %d (%s): %w", l, h, tensor.ErrLayoutMismatch)
		}
	}
	if want := ti.shape(); data.Shape() != want {
		return nil, fmt.Errorf("TensorInfo shape %v, legs %v: %w", data.Shape(), want, tensor.ErrLayoutMismatch)
	}
	for n := 0; n < data.NrBlocks(); n++ {
		if v := tensor.Volume(ti.dims(data.Sectors(n))); v != data.Volume(n) {
			return nil, fmt.Errorf("TensorInfo block %v volume %d, dims give %d: %w",
				data.Sectors(n), data.Volume(n), v, tensor.ErrLayoutMismatch)
		}
	}
	return ti, nil
}

// newScratch returns an owned, empty info for contraction results.
func newScratch() *TensorInfo {
	return &TensorInfo{data: tensor.New(tensor.Shape{})}
}

// shape returns the sector count per leg.
func (ti *TensorInfo) shape() tensor.Shape {
	var s tensor.Shape
	for l, h := range ti.legs {
		s[l] = h.Sectors().Len()
	}
	return s
}

// dims returns the block dimensions of sector indices idx.
func (ti *TensorInfo) dims(idx [3]int) [3]int {
	var d [3]int
	for l, h := range ti.legs {
		d[l] = h.Sectors().Dim(idx[l])
	}
	return d
}

// labels returns the sector labels of sector indices idx.
func (ti *TensorInfo) labels(idx [3]int) [3]symsec.Label {
	var out [3]symsec.Label
	for l, h := range ti.legs {
		out[l] = h.Sectors().Label(idx[l])
	}
	return out
}

// Leg returns the descriptor handle of leg l.
func (ti *TensorInfo) Leg(l int) symsec.Handle { return ti.legs[l] }

// Legs returns all three descriptor handles.
func (ti *TensorInfo) Legs() [3]symsec.Handle { return ti.legs }

// IsPhysical reports whether the site carries a physical leg.
func (ti *TensorInfo) IsPhysical() bool { return ti.physical }

// Data returns the underlying tensor.
func (ti *TensorInfo) Data() *tensor.SiteTensor { return ti.data }

// NrBlocks returns the number of stored blocks.
func (ti *TensorInfo) NrBlocks() int { return ti.data.NrBlocks() }

// UsedSize returns the element count covered by the layout.
func (ti *TensorInfo) UsedSize() int { return ti.data.UsedSize() }

// AllocSize returns the allocated element count.
func (ti *TensorInfo) AllocSize() int { return ti.data.AllocSize() }

// Block returns block n; Offset is Absent when n is out of range.
func (ti *TensorInfo) Block(n int) BlockInfo {
	if n < 0 || n >= ti.data.NrBlocks() {
		return BlockInfo{Index: -1, Offset: Absent}
	}
	idx := ti.data.Sectors(n)
	return BlockInfo{Index: n, Sectors: idx, Offset: ti.data.Offset(n), Dims: ti.dims(idx)}
}

// BlockAt returns the block with sector indices idx; Offset is Absent
// when no such block is stored.
func (ti *TensorInfo) BlockAt(idx [3]int) BlockInfo {
	n := ti.data.SearchSectors(idx)
	if n < 0 {
		return BlockInfo{Index: -1, Sectors: idx, Offset: Absent}
	}
	return BlockInfo{Index: n, Sectors: idx, Offset: ti.data.Offset(n), Dims: ti.dims(idx)}
}

// BlockData returns the elements of block n.
func (ti *TensorInfo) BlockData(n int) []float64 { return ti.data.BlockData(n) }

// RenewSymsecLayout copies ref's descriptors and physical flag and
// substitutes, on link.Leg, the optimizing descriptor of link's cache.
//
// Errors: ErrLinkMismatch when the cache's reference bond is not the
// descriptor ref carries on link.Leg.
func (ti *TensorInfo) RenewSymsecLayout(ref *TensorInfo, link Link) error {
	if link.cache == nil || link.Leg < 0 || link.Leg > 2 {
		return fmt.Errorf("RenewSymsecLayout: bond %d leg %d: %w", link.Bond, link.Leg, ErrLinkMismatch)
	}
	if link.cache.Ref() != ref.legs[link.Leg] {
		return fmt.Errorf("RenewSymsecLayout: cache ref %s, leg %d carries %s: %w",
			link.cache.Ref(), link.Leg, ref.legs[link.Leg], ErrLinkMismatch)
	}
	ti.legs = ref.legs
	ti.legs[link.Leg] = link.cache.Opt()
	ti.physical = ref.physical
	return nil
}

// RenewBlockLayout recomputes the block list from the current descriptors.
//
// With ref == nil every sector combination of positive volume becomes a
// block (branching layout). Otherwise the layout mirrors ref: each ref
// block is translated leg by leg into this info's descriptors by label;
// blocks whose label is missing here, or whose volume is zero, are
// dropped. Keys are kept sorted. Storage only grows; elements are zeroed
// when setZero is true.
func (ti *TensorInfo) RenewBlockLayout(ref *TensorInfo, setZero bool) error {
	shape := ti.shape()
	var (
		qns  []tensor.QN
		vols []int
	)
	if ref == nil {
		for k := 0; k < shape[2]; k++ {
			for j := 0; j < shape[1]; j++ {
				for i := 0; i < shape[0]; i++ {
					idx := [3]int{i, j, k}
					if v := tensor.Volume(ti.dims(idx)); v > 0 {
						qns = append(qns, shape.Encode(idx))
						vols = append(vols, v)
					}
				}
			}
		}
		return ti.data.Relayout(shape, qns, vols, setZero)
	}

	type entry struct {
		qn  tensor.QN
		vol int
	}
	entries := make([]entry, 0, ref.NrBlocks())
	for n := 0; n < ref.NrBlocks(); n++ {
		idx, ok := ti.translate(ref, ref.data.Sectors(n))
		if !ok {
			continue
		}
		if v := tensor.Volume(ti.dims(idx)); v > 0 {
			entries = append(entries, entry{qn: shape.Encode(idx), vol: v})
		}
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].qn < entries[b].qn })
	qns = make([]tensor.QN, len(entries))
	vols = make([]int, len(entries))
	for n, e := range entries {
		qns[n], vols[n] = e.qn, e.vol
	}
	return ti.data.Relayout(shape, qns, vols, setZero)
}

// translate maps ref sector indices onto this info's descriptors by label.
func (ti *TensorInfo) translate(ref *TensorInfo, idx [3]int) ([3]int, bool) {
	out := idx
	for l := 0; l < 3; l++ {
		if ti.legs[l] == ref.legs[l] {
			continue
		}
		j := ti.legs[l].Sectors().Search(ref.legs[l].Sectors().Label(idx[l]))
		if j < 0 {
			return out, false
		}
		out[l] = j
	}
	return out, true
}

// CopyFrom makes ti a deep copy of src (descriptors, layout, elements).
func (ti *TensorInfo) CopyFrom(src *TensorInfo) {
	ti.legs = src.legs
	ti.physical = src.physical
	ti.data.CopyFrom(src.data)
}

// String dumps the descriptors and block layout.
func (ti *TensorInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TensorInfo physical=%t legs=[%s %s %s] used=%d alloc=%d",
		ti.physical, ti.legs[0], ti.legs[1], ti.legs[2], ti.UsedSize(), ti.AllocSize())
	for n := 0; n < ti.NrBlocks(); n++ {
		b := ti.Block(n)
		fmt.Fprintf(&sb, "\n  %v dims=%v @%d", b.Sectors, b.Dims, b.Offset)
	}
	return sb.String()
}

// Pair holds the reference and optimizing infos of one site.
type Pair struct {
	Ref *TensorInfo
	Opt *TensorInfo
}

// String dumps both infos.
func (p Pair) String() string {
	return fmt.Sprintf("ref: %s\nopt: %s", p.Ref, p.Opt)
}
