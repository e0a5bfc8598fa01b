// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and Build never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a fixture by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible dims and values.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithU1 selects U1 sectors with virtual charges 0..maxCharge.
// Panics if maxCharge < 0.
func WithU1(maxCharge int) BuilderOption {
	if maxCharge < 0 {
		panic("builder: WithU1(maxCharge<0)")
	}
	return func(c *builderConfig) {
		c.symmetry = SymmetryU1
		c.maxCharge = maxCharge
	}
}

// WithZ2 selects parity sectors.
func WithZ2() BuilderOption {
	return func(c *builderConfig) { c.symmetry = SymmetryZ2 }
}

// WithTrivial selects one zero-label sector per bond (the default).
func WithTrivial() BuilderOption {
	return func(c *builderConfig) { c.symmetry = SymmetryTrivial }
}

// WithBondDims bounds the dimension of every virtual sector to [lo, hi].
// Panics unless 1 <= lo <= hi.
func WithBondDims(lo, hi int) BuilderOption {
	if lo < 1 || hi < lo {
		panic("builder: WithBondDims(lo<1 || hi<lo)")
	}
	return func(c *builderConfig) { c.minDim, c.maxDim = lo, hi }
}

// WithPhysicalDim sets the physical dimension under the trivial policy.
// Panics if d < 1.
func WithPhysicalDim(d int) BuilderOption {
	if d < 1 {
		panic("builder: WithPhysicalDim(d<1)")
	}
	return func(c *builderConfig) { c.physicalDim = d }
}

// WithOptShift shifts every non-boundary virtual label of the optimizing
// state by k, so that reference and optimizing bonds only partly overlap.
func WithOptShift(k int) BuilderOption {
	return func(c *builderConfig) { c.optShift = k }
}

// WithValue fills every tensor element with v.
func WithValue(v float64) BuilderOption {
	return func(c *builderConfig) { c.valueFn = func(*rand.Rand) float64 { return v } }
}

// WithValueFn overrides the element generator. Panics on nil.
func WithValueFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) { c.valueFn = fn }
}

// WithBoundaryBonds caps the open ends of the topology with boundary bonds.
func WithBoundaryBonds() BuilderOption {
	return func(c *builderConfig) { c.boundary = true }
}
