// Package lvtns computes overlaps between tree tensor network states
// during two-site sweeps, reusing every contraction that a move of the
// optimization center leaves valid.
//
// The module is organized under five packages:
//
//	network/ - the tree of sites and directed bonds, leg layout, sweeps
//	symsec/  - symmetry sector labels, bond descriptors, label matching
//	tensor/  - block-sparse three-leg site tensors and contraction kernels
//	overlap/ - overlap caches, the calculator and the two-site engine
//	builder/ - deterministic chain and star fixtures for tests and demos
//
// Quick ASCII example of a three-armed tree (T3NS):
//
//	  p0   p1
//	  │    │
//	  0    1
//	   ╲  ╱
//	    3 ── 2 ── p2
//
// Sites 0, 1 and 2 carry a physical leg; site 3 branches. A sweep moves a
// two-site center {a,b} across the bonds; at every step lvtns hands back
// the overlap vector of the reference state with everything but the
// center of the optimizing state.
//
//	go get github.com/katalvlaran/lvtns
package lvtns
