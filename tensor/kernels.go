// SPDX-License-Identifier: MIT

// Package tensor - block contraction kernels.
//
// All kernels accumulate (C += α·A·B) into column-major blocks and never
// allocate. Contracted and open extents are clipped to the smaller of the
// two operands, so blocks whose dimensions disagree along a leg contribute
// over their common leading range only. Loop order is fixed, so results
// are bit-reproducible for identical inputs.

package tensor

// OtherLegs returns the two legs different from leg, ascending.
func OtherLegs(leg int) (int, int) {
	switch leg {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// AddOneLeg contracts leg of block a (dims ad) with the row index of the
// matrix b (bl rows, bs columns, column-major) and accumulates into block
// c (dims cd), whose leg takes b's column index:
//
//	C[..o..] += alpha · Σ_l A[..l..] · B[l,o]
//
// The two untouched legs run over min(ad, cd) on each.
func AddOneLeg(alpha float64, leg int, a []float64, ad [3]int, b []float64, bl, bs int, c []float64, cd [3]int) {
	x, y := OtherLegs(leg)
	sa, sc := strides(ad), strides(cd)
	nx, ny := min(ad[x], cd[x]), min(ad[y], cd[y])
	nk, no := min(ad[leg], bl), min(cd[leg], bs)

	for v := 0; v < ny; v++ {
		for u := 0; u < nx; u++ {
			baseA := u*sa[x] + v*sa[y]
			baseC := u*sc[x] + v*sc[y]
			for o := 0; o < no; o++ {
				col := b[bl*o:]
				sum := 0.0
				for l := 0; l < nk; l++ {
					sum += a[baseA+l*sa[leg]] * col[l]
				}
				c[baseC+o*sc[leg]] += alpha * sum
			}
		}
	}
}

// AddTwoLeg contracts blocks a (dims ad) and b (dims bd) over every leg
// except open and accumulates into the matrix c (cl rows, cs columns,
// column-major); rows follow a's open leg, columns b's:
//
//	C[i,j] += alpha · Σ_{u,v} A[..i..] · B[..j..]
func AddTwoLeg(alpha float64, open int, a []float64, ad [3]int, b []float64, bd [3]int, c []float64, cl, cs int) {
	x, y := OtherLegs(open)
	sa, sb := strides(ad), strides(bd)
	nx, ny := min(ad[x], bd[x]), min(ad[y], bd[y])
	ni, nj := min(ad[open], cl), min(bd[open], cs)

	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			sum := 0.0
			for v := 0; v < ny; v++ {
				for u := 0; u < nx; u++ {
					sum += a[i*sa[open]+u*sa[x]+v*sa[y]] * b[j*sb[open]+u*sb[x]+v*sb[y]]
				}
			}
			c[i+cl*j] += alpha * sum
		}
	}
}

// AddJoin contracts leg la of block a with leg lb of block b and
// accumulates into the four-leg block c (dims cd, column-major). The legs
// of c are a's two open legs in leg order followed by b's:
//
//	C[x0,x1,y0,y1] += alpha · Σ_r A[x0,x1;r] · B[y0,y1;r]
func AddJoin(alpha float64, a []float64, ad [3]int, la int, b []float64, bd [3]int, lb int, c []float64, cd [4]int) {
	a0, a1 := OtherLegs(la)
	b0, b1 := OtherLegs(lb)
	sa, sb := strides(ad), strides(bd)
	n0, n1 := min(ad[a0], cd[0]), min(ad[a1], cd[1])
	m0, m1 := min(bd[b0], cd[2]), min(bd[b1], cd[3])
	nr := min(ad[la], bd[lb])

	for y1 := 0; y1 < m1; y1++ {
		for y0 := 0; y0 < m0; y0++ {
			baseB := y0*sb[b0] + y1*sb[b1]
			baseC := cd[0] * cd[1] * (y0 + cd[2]*y1)
			for x1 := 0; x1 < n1; x1++ {
				for x0 := 0; x0 < n0; x0++ {
					baseA := x0*sa[a0] + x1*sa[a1]
					sum := 0.0
					for r := 0; r < nr; r++ {
						sum += a[baseA+r*sa[la]] * b[baseB+r*sb[lb]]
					}
					c[baseC+x0+cd[0]*x1] += alpha * sum
				}
			}
		}
	}
}
