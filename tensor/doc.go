// Package tensor stores block-sparse three-leg site tensors and provides
// the block contraction kernels used by overlap caching.
//
// Layout:
//
//	SiteTensor
//	 ├─ shape     sector count per leg
//	 ├─ qnumbers  ascending block keys (QN = i + n0·(j + n1·k))
//	 ├─ begin     element offsets, one past the end for the last block
//	 └─ data      flat float64 store, column-major inside each block
//
// Kernels:
//
//	AddOneLeg  C[..o..] += α Σ_l A[..l..] B[l,o]        (leg substitution)
//	AddTwoLeg  C[i,j]   += α Σ A[..i..] B[..j..]         (two legs contracted)
//	AddJoin    C[x,y]   += α Σ_r A[x;r] B[y;r]           (two-site join)
//
// Kernels validate nothing; layouts are validated once in Relayout.
package tensor
