// SPDX-License-Identifier: MIT

// Package overlap: functional configuration.
//
// This file defines:
//   - Option (functional options over an unexported config),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values,
//   - PrefactorFunc and the CanonicalGauge default.
//
// Options are resolved once in Build; a Calculator never changes its
// configuration afterwards.

package overlap

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtns/symsec"
)

// Defaults.
const (
	// DefaultCapacityHint sizes each cache for the full optimizing bond
	// dimension when zero.
	DefaultCapacityHint = 0

	// DefaultWorkers runs cache rebuilds sequentially.
	DefaultWorkers = 1
)

// Panic messages of option constructors.
const (
	panicNilLogger    = "overlap: WithLogger(nil)"
	panicNegativeHint = "overlap: WithCapacityHint(n<0)"
	panicWorkers      = "overlap: WithWorkers(n<1)"
	panicNilPrefactor = "overlap: WithPrefactor(nil)"
)

// Coupling describes one block contraction for a PrefactorFunc.
type Coupling struct {
	// Legs is 1 for a leg substitution, 2 for a cache rebuild and 3 for
	// the join of the two center sites into the overlap vector.
	Legs int
	// Leg is the substituted leg (Legs==1), the open leg (Legs==2) or the
	// shared-bond leg of center[0] (Legs==3).
	Leg int
	// Labels are the sector labels of the reference block on its three
	// legs; for the join, those of the center[0] block.
	Labels [3]symsec.Label
	// Physical reports whether the site carries a physical leg.
	Physical bool
}

// PrefactorFunc returns the scalar applied to one block contraction.
// It must be safe for concurrent use when WithWorkers(n>1) is set.
type PrefactorFunc func(Coupling) float64

// CanonicalGauge is the default prefactor: every block contributes with
// weight 1. It is exact for abelian symmetries.
func CanonicalGauge(Coupling) float64 { return 1 }

// Option customizes Build.
type Option func(*config)

// config is the resolved configuration of a Calculator.
type config struct {
	logger          *zap.Logger
	capacityHint    int
	workers         int
	prefactor       PrefactorFunc
	customPrefactor bool
}

// newConfig applies opts over the defaults, later options winning.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:       zap.NewNop(),
		capacityHint: DefaultCapacityHint,
		workers:      DefaultWorkers,
		prefactor:    CanonicalGauge,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes calculator events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(c *config) { c.logger = l }
}

// WithCapacityHint sizes every cache for n optimizing columns per
// reference row instead of the optimizing bond dimension. Caches still
// grow when a layout needs more. Panics on n < 0.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic(panicNegativeHint)
	}
	return func(c *config) { c.capacityHint = n }
}

// WithWorkers splits every cache rebuild over n goroutines. Output blocks
// are partitioned by open-leg sector, so results do not depend on n.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}
	return func(c *config) { c.workers = n }
}

// WithPrefactor replaces CanonicalGauge. Panics on nil.
func WithPrefactor(fn PrefactorFunc) Option {
	if fn == nil {
		panic(panicNilPrefactor)
	}
	return func(c *config) {
		c.prefactor = fn
		c.customPrefactor = true
	}
}
