// SPDX-License-Identifier: MIT

package overlap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtns/builder"
	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/overlap"
	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

const denseEps = 1e-10

// fixture builds a builder fixture or fails the test.
func fixture(t testing.TB, topo builder.Topology, opts ...builder.BuilderOption) *builder.Fixture {
	t.Helper()
	fx, err := builder.Build(topo, opts...)
	require.NoError(t, err)
	return fx
}

// twoSite builds a two-site engine on fx or fails the test.
func twoSite(t testing.TB, fx *builder.Fixture, opts ...overlap.Option) *overlap.TwoSite {
	t.Helper()
	ts, err := overlap.BuildTwoSite(fx.Opt, fx.Ref, fx.Tree, opts...)
	require.NoError(t, err)
	return ts
}

// mat is a dense column-major matrix.
type mat struct {
	r, c int
	d    []float64
}

func newMat(r, c int) mat             { return mat{r: r, c: c, d: make([]float64, r*c)} }
func (m mat) at(i, j int) float64     { return m.d[i+m.r*j] }
func (m mat) add(i, j int, v float64) { m.d[i+m.r*j] += v }
func at3(d [3]int, idx [3]int) int    { return idx[0] + d[0]*(idx[1]+d[1]*idx[2]) }

func place(open, x, y, i, u, v int) [3]int {
	var p [3]int
	p[open], p[x], p[y] = i, u, v
	return p
}

// matchIdentity is the identity between label-matched sectors of ref
// and opt, clipped to the smaller dimension.
func matchIdentity(ref, opt *symsec.Sectors) mat {
	m := newMat(ref.TotalDims(), opt.TotalDims())
	for i := 0; i < ref.Len(); i++ {
		j := opt.Search(ref.Label(i))
		if j < 0 {
			continue
		}
		ro, oo := ref.Offset(i), opt.Offset(j)
		for k := 0; k < min(ref.Dim(i), opt.Dim(j)); k++ {
			m.add(ro+k, oo+k, 1)
		}
	}
	return m
}

// dense3 expands a block-sparse info over the total dimensions of its legs.
func dense3(ti *overlap.TensorInfo) ([]float64, [3]int) {
	var tot [3]int
	for l := 0; l < 3; l++ {
		tot[l] = ti.Leg(l).Sectors().TotalDims()
	}
	out := make([]float64, tensor.Volume(tot))
	for n := 0; n < ti.NrBlocks(); n++ {
		b := ti.Block(n)
		var off [3]int
		for l := 0; l < 3; l++ {
			off[l] = ti.Leg(l).Sectors().Offset(b.Sectors[l])
		}
		data := ti.BlockData(n)
		for k := 0; k < b.Dims[2]; k++ {
			for j := 0; j < b.Dims[1]; j++ {
				for i := 0; i < b.Dims[0]; i++ {
					out[at3(tot, [3]int{off[0] + i, off[1] + j, off[2] + k})] = data[at3(b.Dims, [3]int{i, j, k})]
				}
			}
		}
	}
	return out, tot
}

// legOf returns the leg of site s attached to bond b.
func legOf(tr *network.Tree, s, b int) int {
	for l, leg := range tr.Legs(s) {
		if leg.Kind == network.LegVirtual && leg.Bond == b {
			return l
		}
	}
	return -1
}

// legEnv is the dense environment on leg of site: the contracted rest of
// the network behind a virtual leg, or the label identity otherwise.
func legEnv(c *overlap.Calculator, site, leg int) mat {
	l := c.Tree().Legs(site)[leg]
	if l.Kind == network.LegVirtual {
		return denseEnv(c, l.Bond, site)
	}
	p := c.Pair(site)
	return matchIdentity(p.Ref.Leg(leg).Sectors(), p.Opt.Leg(leg).Sectors())
}

// denseEnv contracts everything behind bond b as seen from toward,
// without any caching.
func denseEnv(c *overlap.Calculator, b, toward int) mat {
	far := c.Tree().Other(b, toward)
	cache := c.Cache(b)
	if far == network.Boundary {
		return matchIdentity(cache.Ref().Sectors(), cache.Opt().Sectors())
	}
	p := c.Pair(far)
	R, rd := dense3(p.Ref)
	P, od := dense3(p.Opt)
	open := legOf(c.Tree(), far, b)
	x, y := tensor.OtherLegs(open)
	ex, ey := legEnv(c, far, x), legEnv(c, far, y)

	e := newMat(rd[open], od[open])
	for i := 0; i < rd[open]; i++ {
		for j := 0; j < od[open]; j++ {
			sum := 0.0
			for u := 0; u < rd[x]; u++ {
				for u2 := 0; u2 < od[x]; u2++ {
					wx := ex.at(u, u2)
					if wx == 0 {
						continue
					}
					for v := 0; v < rd[y]; v++ {
						for v2 := 0; v2 < od[y]; v2++ {
							wy := ey.at(v, v2)
							if wy == 0 {
								continue
							}
							sum += R[at3(rd, place(open, x, y, i, u, v))] * wx * wy * P[at3(od, place(open, x, y, j, u2, v2))]
						}
					}
				}
			}
			e.add(i, j, sum)
		}
	}
	return e
}

// bruteVector computes the overlap vector of center densely.
func bruteVector(c *overlap.Calculator, center overlap.Center) ([]float64, [4]int) {
	bond := c.Tree().CommonBond(center[0], center[1])
	var (
		sides  [2][]float64
		dims   [2][3]int
		totals [4]int
	)
	for i, s := range center {
		ls := legOf(c.Tree(), s, bond)
		o0, o1 := tensor.OtherLegs(ls)
		R, rd := dense3(c.Pair(s).Ref)
		e0, e1 := legEnv(c, s, o0), legEnv(c, s, o1)
		d := [3]int{e0.c, e1.c, rd[ls]}
		a := make([]float64, tensor.Volume(d))
		for r := 0; r < rd[ls]; r++ {
			for x1 := 0; x1 < rd[o1]; x1++ {
				for x0 := 0; x0 < rd[o0]; x0++ {
					val := R[at3(rd, place(ls, o0, o1, r, x0, x1))]
					if val == 0 {
						continue
					}
					for y1 := 0; y1 < e1.c; y1++ {
						for y0 := 0; y0 < e0.c; y0++ {
							a[at3(d, [3]int{y0, y1, r})] += val * e0.at(x0, y0) * e1.at(x1, y1)
						}
					}
				}
			}
		}
		sides[i], dims[i] = a, d
		totals[2*i], totals[2*i+1] = d[0], d[1]
	}

	out := make([]float64, totals[0]*totals[1]*totals[2]*totals[3])
	nr := min(dims[0][2], dims[1][2])
	for y1 := 0; y1 < totals[3]; y1++ {
		for y0 := 0; y0 < totals[2]; y0++ {
			for x1 := 0; x1 < totals[1]; x1++ {
				for x0 := 0; x0 < totals[0]; x0++ {
					sum := 0.0
					for r := 0; r < nr; r++ {
						sum += sides[0][at3(dims[0], [3]int{x0, x1, r})] * sides[1][at3(dims[1], [3]int{y0, y1, r})]
					}
					out[x0+totals[0]*(x1+totals[1]*(y0+totals[2]*y1))] = sum
				}
			}
		}
	}
	return out, totals
}

// denseVector expands an overlap vector over the total dimensions of its legs.
func denseVector(v *overlap.OverlapVector) ([]float64, [4]int) {
	var tot [4]int
	legs := v.Legs()
	for l := 0; l < 4; l++ {
		tot[l] = legs[l].Sectors().TotalDims()
	}
	out := make([]float64, tot[0]*tot[1]*tot[2]*tot[3])
	for n := 0; n < v.NrBlocks(); n++ {
		b := v.Block(n)
		var off [4]int
		for l := 0; l < 4; l++ {
			off[l] = legs[l].Sectors().Offset(b.Sectors[l])
		}
		data := v.BlockData(n)
		e := 0
		for i3 := 0; i3 < b.Dims[3]; i3++ {
			for i2 := 0; i2 < b.Dims[2]; i2++ {
				for i1 := 0; i1 < b.Dims[1]; i1++ {
					for i0 := 0; i0 < b.Dims[0]; i0++ {
						g := (off[0] + i0) + tot[0]*((off[1]+i1)+tot[1]*((off[2]+i2)+tot[2]*(off[3]+i3)))
						out[g] = data[e]
						e++
					}
				}
			}
		}
	}
	return out, tot
}

// requireMatchesBrute checks v elementwise against the dense contraction.
func requireMatchesBrute(t *testing.T, c *overlap.Calculator, v *overlap.OverlapVector) {
	t.Helper()
	want, wantTot := bruteVector(c, v.Center())
	got, gotTot := denseVector(v)
	require.Equal(t, wantTot, gotTot, "center %s", v.Center())
	require.InDeltaSlice(t, want, got, denseEps, "center %s", v.Center())
}

// cacheSnapshot deep-copies every cache of c.
func cacheSnapshot(c *overlap.Calculator) []*overlap.Cache {
	out := make([]*overlap.Cache, c.Tree().NrBonds())
	for b := range out {
		out[b] = c.Cache(b).Clone()
	}
	return out
}
