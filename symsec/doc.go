// Package symsec describes symmetry sectors of tensor network bonds.
//
// It provides:
//   - Label and Group: irrep tuples and the groups they belong to;
//   - Sectors: the sorted, label-unique descriptor of one bond;
//   - Bookkeeper and Handle: the per-state descriptor tables and the
//     comparable, non-owning references other packages hold into them;
//   - Matcher: the label correspondence between a reference and an
//     optimizing descriptor of the same bond.
//
// Quick example:
//
//	ref := symsec.MustSectors([]symsec.Label{symsec.L(0), symsec.L(1)}, []int{2, 3})
//	opt := symsec.MustSectors([]symsec.Label{symsec.L(1), symsec.L(2)}, []int{4, 1})
//	m := symsec.NewMatcher(ref.Len())
//	pairs := m.Match(ref, opt) // [{Ref:1 Opt:0}]
//
// Nothing in this package is safe for concurrent mutation; Bookkeeper and
// Sectors are read-only after construction and may be shared freely.
package symsec
