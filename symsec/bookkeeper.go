// SPDX-License-Identifier: MIT
// Package symsec: per-network sector tables.
//
// A Bookkeeper owns the sector descriptors of one tensor network state:
// one per virtual bond, one per physical site, plus the shared trivial
// descriptor of boundary legs. Everything else in the module refers to
// those descriptors through a Handle, a small comparable value naming a
// (bookkeeper, table, index) slot. Handles never own the descriptor and
// compare equal exactly when they name the same slot of the same
// bookkeeper, which is how overlap code asserts that two legs carry the
// same bond.

package symsec

import "fmt"

// Kind selects the bookkeeper table a Handle points into.
type Kind uint8

const (
	// KindVirtual addresses the virtual bond table.
	KindVirtual Kind = iota
	// KindPhysical addresses the physical bond table.
	KindPhysical
	// KindTrivial addresses the single trivial descriptor.
	KindTrivial
)

// String names the table.
func (k Kind) String() string {
	switch k {
	case KindVirtual:
		return "virtual"
	case KindPhysical:
		return "physical"
	case KindTrivial:
		return "trivial"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Bookkeeper holds the symmetry groups and sector descriptors of one state.
// It is read-only after construction.
type Bookkeeper struct {
	groups   []Group
	virtual  []*Sectors
	physical []*Sectors
	trivial  *Sectors
}

// NewBookkeeper builds a bookkeeper from the group list and the
// per-bond descriptor tables. The slices are copied; descriptors are shared.
//
// Errors: ErrTooManyGroups, ErrNilSectors.
func NewBookkeeper(groups []Group, virtual, physical []*Sectors) (*Bookkeeper, error) {
	if len(groups) > MaxSymmetries {
		return nil, fmt.Errorf("NewBookkeeper(%d groups): %w", len(groups), ErrTooManyGroups)
	}
	for b, s := range virtual {
		if s == nil {
			return nil, fmt.Errorf("NewBookkeeper: virtual bond %d: %w", b, ErrNilSectors)
		}
	}
	for p, s := range physical {
		if s == nil {
			return nil, fmt.Errorf("NewBookkeeper: physical bond %d: %w", p, ErrNilSectors)
		}
	}

	return &Bookkeeper{
		groups:   append([]Group(nil), groups...),
		virtual:  append([]*Sectors(nil), virtual...),
		physical: append([]*Sectors(nil), physical...),
		trivial:  Trivial(),
	}, nil
}

// Groups returns a copy of the symmetry group list.
func (b *Bookkeeper) Groups() []Group { return append([]Group(nil), b.groups...) }

// NrSyms returns the number of active symmetry groups.
func (b *Bookkeeper) NrSyms() int { return len(b.groups) }

// NonAbelian reports whether any group is non-abelian.
func (b *Bookkeeper) NonAbelian() bool {
	for _, g := range b.groups {
		if g.NonAbelian() {
			return true
		}
	}
	return false
}

// NrBonds returns the number of virtual bonds.
func (b *Bookkeeper) NrBonds() int { return len(b.virtual) }

// NrPhysical returns the number of physical bonds.
func (b *Bookkeeper) NrPhysical() int { return len(b.physical) }

// Virtual returns the handle of virtual bond i.
func (b *Bookkeeper) Virtual(i int) Handle { return Handle{keeper: b, kind: KindVirtual, index: i} }

// Physical returns the handle of physical bond p.
func (b *Bookkeeper) Physical(p int) Handle { return Handle{keeper: b, kind: KindPhysical, index: p} }

// Trivial returns the handle of the trivial descriptor.
func (b *Bookkeeper) Trivial() Handle { return Handle{keeper: b, kind: KindTrivial} }

// MaxDimension returns the largest total dimension over all virtual and
// physical bonds. Matchers sized with it never reallocate.
func (b *Bookkeeper) MaxDimension() int {
	m := b.trivial.TotalDims()
	for _, s := range b.virtual {
		if s.TotalDims() > m {
			m = s.TotalDims()
		}
	}
	for _, s := range b.physical {
		if s.TotalDims() > m {
			m = s.TotalDims()
		}
	}
	return m
}

// Handle is a non-owning reference to one descriptor slot of a Bookkeeper.
// The zero Handle is invalid.
type Handle struct {
	keeper *Bookkeeper
	kind   Kind
	index  int
}

// Valid reports whether h points at an existing descriptor.
func (h Handle) Valid() bool {
	if h.keeper == nil {
		return false
	}
	switch h.kind {
	case KindVirtual:
		return h.index >= 0 && h.index < len(h.keeper.virtual)
	case KindPhysical:
		return h.index >= 0 && h.index < len(h.keeper.physical)
	case KindTrivial:
		return true
	}
	return false
}

// Sectors resolves the handle. Panics on an invalid handle.
func (h Handle) Sectors() *Sectors {
	switch h.kind {
	case KindVirtual:
		return h.keeper.virtual[h.index]
	case KindPhysical:
		return h.keeper.physical[h.index]
	default:
		return h.keeper.trivial
	}
}

// Keeper returns the bookkeeper h points into.
func (h Handle) Keeper() *Bookkeeper { return h.keeper }

// Kind returns the table kind.
func (h Handle) Kind() Kind { return h.kind }

// Index returns the slot index within its table (0 for the trivial table).
func (h Handle) Index() int { return h.index }

// String renders "virtual[3]" style names.
func (h Handle) String() string {
	if h.keeper == nil {
		return "<nil>"
	}
	if h.kind == KindTrivial {
		return "trivial"
	}
	return fmt.Sprintf("%s[%d]", h.kind, h.index)
}
