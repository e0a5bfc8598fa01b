// SPDX-License-Identifier: MIT

// Package tensor - block-sparse three-leg site tensor storage.
//
// Purpose:
//   - Hold the non-zero symmetry blocks of one site tensor in a flat buffer.
//   - Address blocks by QN (sorted ascending) and elements column-major
//     inside a block: (i,j,k) at i + d0·j + d0·d1·k.
//   - Grow-only storage: Relayout reuses the buffer while it fits and grows
//     to twice the required size otherwise.
//
// The tensor does not know its sector dimensions; it only records the
// sector count per leg (Shape) and the volume of each block. Callers that
// carry the descriptors (overlap.TensorInfo) derive block dimensions.
//
// Complexity quicksheet:
//   - Search: O(log blocks); BlockData: O(1); Relayout: O(blocks) plus
//     O(used) when zeroing; Clone: O(blocks + used).

package tensor

import (
	"fmt"
	"sort"
	"strings"
)

// SiteTensor is a block-sparse tensor with three legs.
type SiteTensor struct {
	shape    Shape
	qnumbers []QN      // strictly ascending
	begin    []int     // len(qnumbers)+1 offsets into data
	data     []float64 // len(data) is the allocated size
}

// Compile-time assertion.
var _ fmt.Stringer = (*SiteTensor)(nil)

// New returns an empty tensor (no blocks, no storage) of the given shape.
func New(shape Shape) *SiteTensor {
	return &SiteTensor{shape: shape, begin: []int{0}}
}

// NewSiteTensor builds a zero-filled tensor holding every sector
// combination (i,j,k) of shape for which allow returns true (nil allows
// all) and whose volume dims[0][i]·dims[1][j]·dims[2][k] is positive.
//
// Errors:
//   - ErrBadShape if shape is negative or len(dims[leg]) != shape[leg].
func NewSiteTensor(shape Shape, dims [3][]int, allow func(idx [3]int) bool) (*SiteTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	for leg := 0; leg < 3; leg++ {
		if len(dims[leg]) != shape[leg] {
			return nil, fmt.Errorf("NewSiteTensor: leg %d has %d dims for %d sectors: %w",
				leg, len(dims[leg]), shape[leg], ErrBadShape)
		}
	}

	var (
		qns  []QN
		vols []int
	)
	// k outermost keeps QNs ascending without a sort.
	for k := 0; k < shape[2]; k++ {
		for j := 0; j < shape[1]; j++ {
			for i := 0; i < shape[0]; i++ {
				idx := [3]int{i, j, k}
				vol := dims[0][i] * dims[1][j] * dims[2][k]
				if vol == 0 || (allow != nil && !allow(idx)) {
					continue
				}
				qns = append(qns, shape.Encode(idx))
				vols = append(vols, vol)
			}
		}
	}

	t := New(shape)
	if err := t.Relayout(shape, qns, vols, true); err != nil {
		return nil, err
	}
	return t, nil
}

// Relayout replaces the block layout: shape, ascending block keys and
// their volumes. Storage is reused when it fits, otherwise reallocated to
// twice the new used size. Element contents are unspecified afterwards
// unless setZero is true.
//
// Errors:
//   - ErrBadShape for a negative shape.
//   - ErrLayoutMismatch if len(qns) != len(volumes), keys are not strictly
//     ascending or outside shape, or a volume is negative.
func (t *SiteTensor) Relayout(shape Shape, qns []QN, volumes []int, setZero bool) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if len(qns) != len(volumes) {
		return fmt.Errorf("SiteTensor.Relayout(%d keys, %d volumes): %w", len(qns), len(volumes), ErrLayoutMismatch)
	}
	limit := QN(shape.Blocks())
	for n, q := range qns {
		if q >= limit || (n > 0 && q <= qns[n-1]) || volumes[n] < 0 {
			return fmt.Errorf("SiteTensor.Relayout: block %d (qn %d): %w", n, q, ErrLayoutMismatch)
		}
	}

	t.shape = shape
	t.qnumbers = append(t.qnumbers[:0], qns...)
	t.begin = append(t.begin[:0], 0)
	used := 0
	for _, v := range volumes {
		used += v
		t.begin = append(t.begin, used)
	}
	t.reserve(used)
	if setZero {
		clear(t.data[:used])
	}
	return nil
}

// reserve guarantees len(t.data) >= used, growing to 2·used.
func (t *SiteTensor) reserve(used int) {
	if used <= len(t.data) {
		return
	}
	t.data = make([]float64, 2*used)
}

// Shape returns the sector count per leg.
func (t *SiteTensor) Shape() Shape { return t.shape }

// NrBlocks returns the number of stored blocks.
func (t *SiteTensor) NrBlocks() int { return len(t.qnumbers) }

// QNumber returns the key of block n.
func (t *SiteTensor) QNumber(n int) QN { return t.qnumbers[n] }

// Sectors returns the sector indices of block n.
func (t *SiteTensor) Sectors(n int) [3]int { return t.shape.Decode(t.qnumbers[n]) }

// Search returns the block holding key q, or -1.
// Complexity: O(log blocks).
func (t *SiteTensor) Search(q QN) int {
	n := sort.Search(len(t.qnumbers), func(i int) bool { return t.qnumbers[i] >= q })
	if n < len(t.qnumbers) && t.qnumbers[n] == q {
		return n
	}
	return -1
}

// SearchSectors is Search on sector indices; -1 if idx is outside the shape.
func (t *SiteTensor) SearchSectors(idx [3]int) int {
	if !t.shape.Contains(idx) {
		return -1
	}
	return t.Search(t.shape.Encode(idx))
}

// Offset returns the element offset of block n.
func (t *SiteTensor) Offset(n int) int { return t.begin[n] }

// Volume returns the element count of block n.
func (t *SiteTensor) Volume(n int) int { return t.begin[n+1] - t.begin[n] }

// BlockData returns the elements of block n (a view, not a copy).
func (t *SiteTensor) BlockData(n int) []float64 { return t.data[t.begin[n]:t.begin[n+1]] }

// Data returns the used region of the element store (a view).
func (t *SiteTensor) Data() []float64 { return t.data[:t.UsedSize()] }

// UsedSize returns the number of elements covered by the layout.
func (t *SiteTensor) UsedSize() int { return t.begin[len(t.begin)-1] }

// AllocSize returns the allocated element count.
func (t *SiteTensor) AllocSize() int { return len(t.data) }

// CopyFrom makes t a deep copy of src's layout and used elements,
// reusing t's storage when it is large enough.
func (t *SiteTensor) CopyFrom(src *SiteTensor) {
	t.shape = src.shape
	t.qnumbers = append(t.qnumbers[:0], src.qnumbers...)
	t.begin = append(t.begin[:0], src.begin...)
	used := src.UsedSize()
	t.reserve(used)
	copy(t.data[:used], src.data[:used])
}

// Clone returns a deep copy sized to the used region.
func (t *SiteTensor) Clone() *SiteTensor {
	c := &SiteTensor{
		shape:    t.shape,
		qnumbers: append([]QN(nil), t.qnumbers...),
		begin:    append([]int(nil), t.begin...),
		data:     make([]float64, t.UsedSize()),
	}
	copy(c.data, t.data)
	return c
}

// Scale multiplies every used element by alpha.
func (t *SiteTensor) Scale(alpha float64) {
	d := t.Data()
	for i := range d {
		d[i] *= alpha
	}
}

// String renders a short layout summary.
func (t *SiteTensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SiteTensor%v blocks=%d used=%d alloc=%d", [3]int(t.shape), t.NrBlocks(), t.UsedSize(), t.AllocSize())
	for n := range t.qnumbers {
		fmt.Fprintf(&sb, "\n  %v @%d len=%d", t.Sectors(n), t.begin[n], t.Volume(n))
	}
	return sb.String()
}
