// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is included
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is deterministic.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i), one Float64 draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(MethodRandomSparse, g, n)
		if err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}
		if p == MaxProbability {
			return addCompleteEdges(MethodRandomSparse, g, ids)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(MethodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
