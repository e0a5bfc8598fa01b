// Package overlap computes the overlap of a reference tree tensor network
// state with an optimizing one, incrementally, for two-site sweeps.
//
// Every bond owns a Cache: the contraction of everything on one side of
// the bond, reference with optimizing state, directed toward the site on
// the other side. A two-site optimizer asks for the OverlapVector of its
// current center (two adjacent sites); the caches on all bonds leaving the
// center are combined with the reference tensors of the two center sites.
//
// Pieces:
//   - TensorInfo: a block-sparse site tensor plus the sector descriptors
//     of its legs; Pair holds the reference and optimizing info of a site.
//   - Cache: one block per reference sector of a bond, ldim × sdim.
//   - Calculator: owns the caches and infos, resolves links between
//     sites and performs the two contraction primitives (OneLegContract,
//     RebuildCache) plus their composition ChainContract.
//   - TwoSite and Session: the sweep state machine. The first center
//     walks the whole tree; a move to a center sharing one site rebuilds
//     only the bond the departing site leaves behind.
//
// Quick example:
//
//	ts, err := overlap.BuildTwoSite(opt, ref, tree, overlap.WithLogger(log))
//	if err != nil { ... }
//	for _, c := range centers {
//	    v, err := ts.GetOverlapVector(c)
//	    if err != nil { ... }
//	    // optimize the two-site tensor of c against v, write it back
//	}
//
// The optimizing tensors may be changed in place between calls as long
// as their block layout is kept. Nothing here is safe for concurrent use;
// WithWorkers only parallelizes inside a single cache rebuild.
package overlap
