// SPDX-License-Identifier: MIT
// Package symsec: sector descriptors.
//
// A Sectors value lists the symmetry sectors of one bond: a label and a
// dimension per sector, sorted by label with unique labels. Sector indices
// are positions in that sorted list and are what block-sparse tensors use
// to address their blocks.
//
// Determinism:
//   - NewSectors sorts its input; the resulting indices are stable for a
//     given label set regardless of input order.
//   - Search is a binary search over the sorted labels.

package symsec

import (
	"fmt"
	"sort"
	"strings"
)

// Sectors is an immutable symmetry sector descriptor.
type Sectors struct {
	labels []Label
	dims   []int
	total  int
}

// NewSectors builds a descriptor from parallel label and dimension lists.
// Input order is irrelevant; sectors are stored sorted by label.
//
// Errors:
//   - ErrLengthMismatch if len(labels) != len(dims).
//   - ErrBadDim if any dimension is negative.
//   - ErrDuplicateLabel if a label appears twice.
//
// Complexity: O(n log n).
func NewSectors(labels []Label, dims []int) (*Sectors, error) {
	if len(labels) != len(dims) {
		return nil, fmt.Errorf("NewSectors(%d labels, %d dims): %w", len(labels), len(dims), ErrLengthMismatch)
	}
	idx := make([]int, len(labels))
	for i := range idx {
		if dims[i] < 0 {
			return nil, fmt.Errorf("NewSectors: sector %s dim %d: %w", labels[i], dims[i], ErrBadDim)
		}
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return labels[idx[a]].Compare(labels[idx[b]]) < 0 })

	s := &Sectors{
		labels: make([]Label, len(labels)),
		dims:   make([]int, len(labels)),
	}
	for n, i := range idx {
		if n > 0 && labels[i] == s.labels[n-1] {
			return nil, fmt.Errorf("NewSectors: label %s: %w", labels[i], ErrDuplicateLabel)
		}
		s.labels[n] = labels[i]
		s.dims[n] = dims[i]
		s.total += dims[i]
	}

	return s, nil
}

// MustSectors is NewSectors that panics on error. Intended for fixtures.
func MustSectors(labels []Label, dims []int) *Sectors {
	s, err := NewSectors(labels, dims)
	if err != nil {
		panic(err)
	}
	return s
}

// Trivial returns the one-sector descriptor (zero label, dimension 1)
// used for boundary legs.
func Trivial() *Sectors {
	return &Sectors{labels: []Label{{}}, dims: []int{1}, total: 1}
}

// Len returns the number of sectors.
func (s *Sectors) Len() int { return len(s.labels) }

// Label returns the label of sector i.
func (s *Sectors) Label(i int) Label { return s.labels[i] }

// Dim returns the dimension of sector i.
func (s *Sectors) Dim(i int) int { return s.dims[i] }

// Dims returns a copy of all sector dimensions in sector order.
func (s *Sectors) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)
	return out
}

// TotalDims returns the sum of all sector dimensions.
func (s *Sectors) TotalDims() int { return s.total }

// Offset returns the position of sector i inside the dense index space
// of the bond (sum of the dimensions of the preceding sectors).
func (s *Sectors) Offset(i int) int {
	off := 0
	for n := 0; n < i; n++ {
		off += s.dims[n]
	}
	return off
}

// Search returns the index of the sector carrying label, or -1.
// Complexity: O(log n).
func (s *Sectors) Search(label Label) int {
	i := sort.Search(len(s.labels), func(n int) bool { return s.labels[n].Compare(label) >= 0 })
	if i < len(s.labels) && s.labels[i] == label {
		return i
	}
	return -1
}

// String renders "{label:dim ...}".
func (s *Sectors) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range s.labels {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", s.labels[i], s.dims[i])
	}
	sb.WriteByte('}')
	return sb.String()
}
