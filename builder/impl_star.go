// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first allocated vertex is the center; the remaining n-1 are leaves.

package builder

import "github.com/katalvlaran/bitgraph/core"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodStar, g, n)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = addEdge(MethodStar, g, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
