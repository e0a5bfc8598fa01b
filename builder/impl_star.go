// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// impl_star.go - Star(armLen) topology: one branching site with three
// physical arms, the smallest shape exercising a T3NS branching tensor.
//
// Layout (armLen = L):
//   - arm a ∈ {0,1,2} holds sites a·L .. a·L+L-1;
//   - hub = 3·L, the only branching site;
//   - arms 0 and 1 flow into the hub and are numbered tip first
//     (a·L → … → a·L+L-1 → hub);
//   - the hub flows into arm 2, numbered from the hub side, so its tip
//     is last (hub → 2·L → … → 3·L-1).
//
// With WithBoundaryBonds the three tips get boundary bonds, appended
// after the inner bonds.
//
// Complexity: O(L).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtns/network"
)

// Star returns a Topology building a three-armed tree with arms of armLen sites.
func Star(armLen int) Topology {
	return func(cfg builderConfig) (*network.Tree, error) {
		if armLen < MinArmLength {
			return nil, fmt.Errorf("%s: armLen=%d < min=%d: %w", MethodStar, armLen, MinArmLength, ErrTooFewSites)
		}
		hub := 3 * armLen
		phys := make([]bool, hub+1)
		for i := 0; i < hub; i++ {
			phys[i] = true
		}

		var bonds []network.Bond
		for a := 0; a < 2; a++ {
			for k := 0; k < armLen; k++ {
				to := a*armLen + k + 1
				if k == armLen-1 {
					to = hub
				}
				bonds = append(bonds, network.Bond{From: a*armLen + k, To: to})
			}
		}
		prev := hub
		for k := 0; k < armLen; k++ {
			bonds = append(bonds, network.Bond{From: prev, To: 2*armLen + k})
			prev = 2*armLen + k
		}

		if cfg.boundary {
			bonds = append(bonds,
				network.Bond{From: network.Boundary, To: 0},
				network.Bond{From: network.Boundary, To: armLen},
				network.Bond{From: 3*armLen - 1, To: network.Boundary},
			)
		}
		return network.New(phys, bonds)
	}
}
