// SPDX-License-Identifier: MIT

// Package network describes the topology of a three-legged tree tensor
// network (T3NS): which sites exist, which are physical, how virtual bonds
// connect them and which bond sits on each of the three legs of a site.
//
// Bonds are oriented along the renormalization flow (From→To). A site
// tensor follows the |a>|b><c| convention: the first two legs are
// incoming, the last is outgoing. Physical sites carry their physical
// index on the middle leg:
//
//	      phys                  in1
//	       │                     │
//	in ──[ s ]── out      in0 ──[ b ]── out
//
// Bonds with one Boundary endpoint cap the open ends of the tree (T3NS
// boundary bonds). Legs that attach to nothing are LegBoundary legs and
// carry the trivial sector.
//
// Traversals:
//   - Path / Distance: breadth-first search with a FIFO queue.
//   - SweepCenters: depth-first two-site sweep order.
//
// A Tree is immutable after New and safe for concurrent readers.
package network
