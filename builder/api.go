// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(topo, opts...). Resolves cfg, builds the tree,
//     then the reference and optimizing bookkeepers and tensors.
//   - Determinism: same topology, options and seed ⇒ identical fixtures.
//     Draw order is fixed: reference sectors, optimizing sectors,
//     reference tensors, optimizing tensors.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/overlap"
)

// Topology builds a network from the resolved configuration.
type Topology func(cfg builderConfig) (*network.Tree, error)

// Fixture is a network with a reference and an optimizing state on it.
type Fixture struct {
	Tree *network.Tree
	Ref  overlap.State
	Opt  overlap.State
}

// Build assembles a fixture on topo.
//
// Errors:
//   - ErrConstructFailed for a nil topology or a lower-layer failure.
//   - Topology errors (ErrTooFewSites, network sentinels), wrapped.
func Build(topo Topology, opts ...BuilderOption) (*Fixture, error) {
	if topo == nil {
		return nil, fmt.Errorf("%s: nil topology: %w", MethodBuild, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	tree, err := topo(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	refBook, err := cfg.bookkeeper(tree, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: reference sectors: %v: %w", MethodBuild, err, ErrConstructFailed)
	}
	optBook, err := cfg.bookkeeper(tree, cfg.optShift)
	if err != nil {
		return nil, fmt.Errorf("%s: optimizing sectors: %v: %w", MethodBuild, err, ErrConstructFailed)
	}

	f := &Fixture{Tree: tree, Ref: overlap.State{Book: refBook}, Opt: overlap.State{Book: optBook}}
	if f.Ref.Tensors, err = cfg.tensors(tree, refBook); err != nil {
		return nil, fmt.Errorf("%s: reference tensors: %v: %w", MethodBuild, err, ErrConstructFailed)
	}
	if f.Opt.Tensors, err = cfg.tensors(tree, optBook); err != nil {
		return nil, fmt.Errorf("%s: optimizing tensors: %v: %w", MethodBuild, err, ErrConstructFailed)
	}
	return f, nil
}
