// Package network defines the tree topology of a three-legged tree tensor
// network: sites, the virtual bonds between them, and the leg layout of
// every site tensor.
//
// This file declares Boundary, LegKind, Leg, Bond, Tree, the sentinel
// errors, and the New constructor.
//
// Errors:
//
//	ErrNoSites         - the network has no sites.
//	ErrSiteOutOfRange  - a bond endpoint or query names a missing site.
//	ErrBondOutOfRange  - a query names a missing bond.
//	ErrSelfLoop        - a bond connects a site to itself (or nothing to nothing).
//	ErrDegree          - a site exceeds its incoming/outgoing bond limit.
//	ErrNotTree         - the site graph is disconnected or has a cycle.
package network

import (
	"errors"
	"fmt"
)

// Boundary marks a missing site: the open end of a boundary bond, or the
// bond index of a leg that does not attach to a virtual bond.
const Boundary = -1

// Sentinel errors for tree construction and queries.
var (
	// ErrNoSites indicates an empty site list.
	ErrNoSites = errors.New("network: no sites")

	// ErrSiteOutOfRange indicates a site index outside [0, NrSites).
	ErrSiteOutOfRange = errors.New("network: site out of range")

	// ErrBondOutOfRange indicates a bond index outside [0, NrBonds).
	ErrBondOutOfRange = errors.New("network: bond out of range")

	// ErrSelfLoop indicates a bond whose endpoints coincide.
	ErrSelfLoop = errors.New("network: bond endpoints coincide")

	// ErrDegree indicates too many incoming or outgoing bonds on one site.
	ErrDegree = errors.New("network: site degree exceeded")

	// ErrNotTree indicates that sites and bonds do not form a tree.
	ErrNotTree = errors.New("network: not a tree")
)

// LegKind classifies one leg of a site tensor.
type LegKind uint8

const (
	// LegBoundary is a leg without a bond; it carries the trivial sector.
	LegBoundary LegKind = iota
	// LegVirtual attaches to a virtual bond between sites.
	LegVirtual
	// LegPhysical carries the local physical degrees of freedom.
	LegPhysical
)

// String names the kind.
func (k LegKind) String() string {
	switch k {
	case LegBoundary:
		return "boundary"
	case LegVirtual:
		return "virtual"
	case LegPhysical:
		return "physical"
	default:
		return fmt.Sprintf("LegKind(%d)", uint8(k))
	}
}

// Leg describes one of the three legs of a site.
// Bond is the virtual bond index for LegVirtual, the physical index for
// LegPhysical and Boundary otherwise.
type Leg struct {
	Kind LegKind
	Bond int
}

// Bond is a virtual bond oriented along the renormalization flow From→To.
// Either endpoint may be Boundary, which makes it a boundary bond.
type Bond struct {
	From int
	To   int
}

// IsBoundary reports whether one endpoint is missing.
func (b Bond) IsBoundary() bool { return b.From == Boundary || b.To == Boundary }

// Tree is an immutable tree tensor network topology.
//
// Every site has exactly three legs in the |a>|b><c| convention:
//   - physical site:  (incoming, physical, outgoing)
//   - branching site: (incoming, incoming, outgoing), incoming bonds by index
//
// A missing incoming or outgoing bond becomes a LegBoundary leg.
type Tree struct {
	physical  []bool
	physIndex []int // site -> physical index, Boundary for branching sites
	bonds     []Bond
	legs      [][3]Leg
	neighbors [][]int // ascending site IDs, site-site bonds only
}

// String summarizes the topology.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree(sites=%d physical=%d bonds=%d)", t.NrSites(), t.NrPhysical(), t.NrBonds())
}
