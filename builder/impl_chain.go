// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// impl_chain.go - Chain(n) topology.
//
// Contract:
//   - n ≥ MinChainSites (else ErrTooFewSites).
//   - Sites 0..n-1, all physical; bonds i → i+1 in increasing i.
//   - With WithBoundaryBonds: Boundary → 0 and n-1 → Boundary appended.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtns/network"
)

// Chain returns a Topology building a linear chain of n physical sites.
func Chain(n int) Topology {
	return func(cfg builderConfig) (*network.Tree, error) {
		if n < MinChainSites {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodChain, n, MinChainSites, ErrTooFewSites)
		}
		phys := make([]bool, n)
		bonds := make([]network.Bond, 0, n+1)
		for i := range phys {
			phys[i] = true
			if i > 0 {
				bonds = append(bonds, network.Bond{From: i - 1, To: i})
			}
		}
		if cfg.boundary {
			bonds = append(bonds,
				network.Bond{From: network.Boundary, To: 0},
				network.Bond{From: n - 1, To: network.Boundary},
			)
		}
		return network.New(phys, bonds)
	}
}
