// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges (i-1, i) then the closing edge (n-1, 0).

package builder

import "github.com/katalvlaran/bitgraph/core"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodCycle, g, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodCycle, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return addEdge(MethodCycle, g, ids[n-1], ids[0])
	}
}
