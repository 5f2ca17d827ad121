// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Allocates n vertices; emits edges (i-1, i) for i=1..n-1 in increasing order.

package builder

import "github.com/katalvlaran/bitgraph/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodPath, g, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
