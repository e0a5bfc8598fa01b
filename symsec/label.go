// SPDX-License-Identifier: MIT

package symsec

import (
	"strconv"
	"strings"
)

// MaxSymmetries bounds the number of simultaneous symmetry groups.
const MaxSymmetries = 4

// Label is the irrep tuple identifying a sector, one entry per active
// group. Unused trailing entries stay zero, so two labels are equal
// exactly when their arrays are equal.
type Label [MaxSymmetries]int

// L builds a Label from the leading irrep values.
// Panics when more than MaxSymmetries values are given.
func L(irreps ...int) Label {
	if len(irreps) > MaxSymmetries {
		panic("symsec: L() with more than MaxSymmetries irreps")
	}
	var l Label
	copy(l[:], irreps)
	return l
}

// Compare orders labels lexicographically: -1, 0 or +1.
func (l Label) Compare(o Label) int {
	for i := 0; i < MaxSymmetries; i++ {
		switch {
		case l[i] < o[i]:
			return -1
		case l[i] > o[i]:
			return 1
		}
	}
	return 0
}

// String renders the label as "(a,b,...)" over the first n entries
// that are significant (trailing zeros trimmed, at least one entry).
func (l Label) String() string {
	n := MaxSymmetries
	for n > 1 && l[n-1] == 0 {
		n--
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(l[i]))
	}
	sb.WriteByte(')')
	return sb.String()
}
