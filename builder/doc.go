// Package builder assembles deterministic tree tensor network fixtures:
// a topology plus a reference and an optimizing state with sector tables
// and filled site tensors.
//
// The package offers:
//
//   - Topologies (Topology implementations):
//     – Chain(n):      n physical sites in a line.
//     – Star(armLen):  one branching site with three physical arms.
//   - Configuration (BuilderOption → builderConfig):
//     – WithSeed / WithRand:         RNG for dims and values.
//     – WithTrivial / WithU1 / WithZ2: sector policy.
//     – WithBondDims, WithPhysicalDim: sector dimensions.
//     – WithOptShift:                partial label overlap between states.
//     – WithValue / WithValueFn:     element generator.
//     – WithBoundaryBonds:           T3NS boundary bonds at the open ends.
//   - Orchestrator: Build(topo, opts...) → *Fixture{Tree, Ref, Opt}.
//
// Guarantees:
//
//   - Same topology, options and seed ⇒ identical fixtures.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Build returns sentinel errors (ErrTooFewSites, ErrConstructFailed).
//
// Example:
//
//	fx, err := builder.Build(builder.Star(2), builder.WithU1(2), builder.WithSeed(7))
//	if err != nil { … }
//	ts, err := overlap.BuildTwoSite(fx.Opt, fx.Ref, fx.Tree)
package builder
