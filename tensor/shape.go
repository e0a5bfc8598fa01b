// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// QN is the combined quantum number of a block: its three sector indices
// packed as i + n0·(j + n1·k) for a shape (n0, n1, n2). Ascending QN
// order is therefore k-major, i-minor.
type QN uint64

// Shape holds the number of sectors on each of the three legs.
type Shape [3]int

// Validate returns ErrBadShape if any sector count is negative.
func (s Shape) Validate() error {
	for leg, n := range s {
		if n < 0 {
			return fmt.Errorf("Shape%v leg %d: %w", [3]int(s), leg, ErrBadShape)
		}
	}
	return nil
}

// Blocks returns the number of sector combinations n0·n1·n2.
func (s Shape) Blocks() int { return s[0] * s[1] * s[2] }

// Contains reports whether idx addresses a sector on every leg.
func (s Shape) Contains(idx [3]int) bool {
	for leg := 0; leg < 3; leg++ {
		if idx[leg] < 0 || idx[leg] >= s[leg] {
			return false
		}
	}
	return true
}

// Encode packs sector indices into a QN. idx must satisfy Contains.
func (s Shape) Encode(idx [3]int) QN {
	return QN(idx[0] + s[0]*(idx[1]+s[1]*idx[2]))
}

// Decode unpacks a QN produced by Encode on the same shape.
func (s Shape) Decode(q QN) [3]int {
	v := int(q)
	i := v % s[0]
	v /= s[0]
	j := v % s[1]
	return [3]int{i, j, v / s[1]}
}

// strides returns the column-major element strides of a block with dims d.
func strides(d [3]int) [3]int { return [3]int{1, d[0], d[0] * d[1]} }

// Volume returns d0·d1·d2.
func Volume(d [3]int) int { return d[0] * d[1] * d[2] }
