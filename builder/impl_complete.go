// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Emits every pair (i, j), i < j, in lexicographic order.
//
// Complexity: O(n²·L) time; the adjacency arena is already dense-capable.

package builder

import "github.com/katalvlaran/bitgraph/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodComplete, g, n)
		if err != nil {
			return err
		}

		return addCompleteEdges(MethodComplete, g, ids)
	}
}
