// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Allocates the left side first, then the right side.
//   - Emits left×right pairs, left-major.

package builder

import "github.com/katalvlaran/bitgraph/core"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		ids, err := addVertices(MethodCompleteBipartite, g, n1+n2)
		if err != nil {
			return err
		}
		left, right := ids[:n1], ids[n1:]
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(MethodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
