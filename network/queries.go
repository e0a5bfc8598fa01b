// SPDX-License-Identifier: MIT

package network

import "fmt"

// NrSites returns the number of sites.
func (t *Tree) NrSites() int { return len(t.legs) }

// NrBonds returns the number of virtual bonds, boundary bonds included.
func (t *Tree) NrBonds() int { return len(t.bonds) }

// NrPhysical returns the number of physical sites.
func (t *Tree) NrPhysical() int {
	n := 0
	for _, p := range t.physical {
		if p {
			n++
		}
	}
	return n
}

// HasSite reports whether s is a site of t.
func (t *Tree) HasSite(s int) bool { return s >= 0 && s < len(t.legs) }

// IsPhysical reports whether site s carries a physical leg.
func (t *Tree) IsPhysical(s int) bool { return t.physical[s] }

// PhysicalIndex returns the physical bond index of site s, or Boundary
// for a branching site.
func (t *Tree) PhysicalIndex(s int) int { return t.physIndex[s] }

// Legs returns the three legs of site s.
func (t *Tree) Legs(s int) [3]Leg { return t.legs[s] }

// IsPhysicalLeg reports whether leg of site s is its physical leg.
func (t *Tree) IsPhysicalLeg(s, leg int) bool { return t.legs[s][leg].Kind == LegPhysical }

// BondsOfSite returns the virtual bond index on each leg of s, Boundary
// for physical and boundary legs.
func (t *Tree) BondsOfSite(s int) [3]int {
	var out [3]int
	for i, l := range t.legs[s] {
		out[i] = Boundary
		if l.Kind == LegVirtual {
			out[i] = l.Bond
		}
	}
	return out
}

// Bond returns the endpoints of bond b.
func (t *Tree) Bond(b int) Bond { return t.bonds[b] }

// Other returns the endpoint of bond b that is not s.
func (t *Tree) Other(b, s int) int {
	if t.bonds[b].From == s {
		return t.bonds[b].To
	}
	return t.bonds[b].From
}

// CommonBond returns the bond joining sites a and b, or Boundary when
// they are not adjacent (or equal).
func (t *Tree) CommonBond(a, b int) int {
	if !t.HasSite(a) || !t.HasSite(b) || a == b {
		return Boundary
	}
	for _, l := range t.legs[a] {
		if l.Kind != LegVirtual {
			continue
		}
		bd := t.bonds[l.Bond]
		if (bd.From == a && bd.To == b) || (bd.From == b && bd.To == a) {
			return l.Bond
		}
	}
	return Boundary
}

// Adjacent reports whether sites a and b share a bond.
func (t *Tree) Adjacent(a, b int) bool { return t.CommonBond(a, b) != Boundary }

// Neighbors returns the sites sharing a bond with s, ascending.
func (t *Tree) Neighbors(s int) []int { return append([]int(nil), t.neighbors[s]...) }

// checkSite wraps ErrSiteOutOfRange with the offending index.
func (t *Tree) checkSite(s int) error {
	if !t.HasSite(s) {
		return fmt.Errorf("network: site %d of %d: %w", s, t.NrSites(), ErrSiteOutOfRange)
	}
	return nil
}
