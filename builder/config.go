// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = rand.New(rand.NewSource(DefaultSeed))
//   • symmetry     = SymmetryTrivial
//   • dims         = [DefaultMinDim, DefaultMaxDim] per virtual sector
//   • maxCharge    = DefaultMaxCharge (U1 only)
//   • physicalDim  = DefaultPhysicalDim (trivial only)
//   • optShift     = 0 (optimizing labels equal reference labels)
//   • valueFn      = uniform in [-1, 1)
//   • boundary     = false (no boundary bonds)

package builder

import "math/rand" // RNG for dims and tensor values

// Symmetry selects the sector policy of generated states.
type Symmetry uint8

const (
	// SymmetryTrivial puts a single zero-label sector on every bond.
	SymmetryTrivial Symmetry = iota
	// SymmetryU1 labels virtual sectors with charges 0..maxCharge and
	// physical sectors with {0,1}; blocks conserve in+in = out.
	SymmetryU1
	// SymmetryZ2 labels every bond with parities {0,1}; blocks conserve
	// parity.
	SymmetryZ2
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to topologies (immutable to callers).
type builderConfig struct {
	rng         *rand.Rand
	symmetry    Symmetry
	minDim      int
	maxDim      int
	maxCharge   int
	physicalDim int
	optShift    int
	valueFn     func(*rand.Rand) float64
	boundary    bool
}

// uniformValue draws from [-1, 1).
func uniformValue(r *rand.Rand) float64 { return 2*r.Float64() - 1 }

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         rand.New(rand.NewSource(DefaultSeed)),
		symmetry:    SymmetryTrivial,
		minDim:      DefaultMinDim,
		maxDim:      DefaultMaxDim,
		maxCharge:   DefaultMaxCharge,
		physicalDim: DefaultPhysicalDim,
		valueFn:     uniformValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// drawDim returns a dimension in [minDim, maxDim].
func (c builderConfig) drawDim() int {
	if c.maxDim == c.minDim {
		return c.minDim
	}
	return c.minDim + c.rng.Intn(c.maxDim-c.minDim+1)
}
