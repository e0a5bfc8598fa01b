// SPDX-License-Identifier: MIT

package symsec

import "fmt"

// Group enumerates the symmetry groups a bookkeeper may carry.
type Group uint8

const (
	// Z2 is the parity group.
	Z2 Group = iota
	// U1 is a particle-number or spin-projection symmetry.
	U1
	// SU2 is total-spin symmetry (non-abelian).
	SU2
	// PointGroup is an abelian molecular point group irrep label.
	PointGroup
)

// String returns the conventional group name.
func (g Group) String() string {
	switch g {
	case Z2:
		return "Z2"
	case U1:
		return "U1"
	case SU2:
		return "SU2"
	case PointGroup:
		return "PG"
	default:
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
}

// NonAbelian reports whether couplings of g carry non-trivial
// recoupling coefficients.
func (g Group) NonAbelian() bool { return g == SU2 }
