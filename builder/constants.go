// Package builder defines shared constants used by the fixture
// constructors, keeping defaults and validation consistent.
package builder

// Constructor names used to prefix errors.
const (
	// MethodChain is the canonical name for the Chain topology.
	MethodChain = "Chain"
	// MethodStar is the canonical name for the Star topology.
	MethodStar  = "Star"
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
)

// Size minima.
const (
	// MinChainSites is the smallest chain that holds a two-site center.
	MinChainSites = 2
	// MinArmLength is the smallest arm of a Star.
	MinArmLength  = 1
)

// Sector and value defaults.
const (
	// DefaultSeed seeds the builder RNG when no WithSeed/WithRand is given.
	DefaultSeed int64 = 1

	// DefaultMinDim and DefaultMaxDim bound virtual sector dimensions.
	DefaultMinDim = 1
	DefaultMaxDim = 2

	// DefaultMaxCharge is the largest U1 charge on a virtual bond.
	DefaultMaxCharge = 2

	// DefaultPhysicalDim is the physical dimension under the trivial policy.
	DefaultPhysicalDim = 2
)
