// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbour enumeration: Neighbors (lazy), NeighborIDs (slice), NextNeighbor (cursor).
// Determinism:
//   - Neighbours are always produced in ascending id order.
// Mutation during iteration:
//   - Mutating v's neighbour set while iterating yields unspecified but
//     memory-safe results; dfs.Iterator detects it via Generation().

package core

import "iter"

// Neighbors returns a lazy ascending iterator over the neighbours of v.
// Each call returns a fresh sequence; each step is one NextSet query.
//
// Errors: ErrOutOfRange, ErrUnknownVertex.
func (g *Graph) Neighbors(v int) (iter.Seq[int], error) {
	if err := g.checkLive("Neighbors", v); err != nil {
		return nil, err
	}

	return g.store.neighbours(v).All(), nil
}

// NeighborIDs returns the neighbours of v in ascending order.
//
// Errors: ErrOutOfRange, ErrUnknownVertex.
// Complexity: O(deg(v)·L).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if err := g.checkLive("NeighborIDs", v); err != nil {
		return nil, err
	}
	nb := g.store.neighbours(v)

	return nb.AppendTo(make([]int, 0, nb.Count())), nil
}

// NextNeighbor returns the smallest neighbour of v that is ≥ from, or
// (-1, false) when there is none or v is not live. It is the cursor
// primitive behind traversals that keep their own position per vertex.
// Complexity: O(L).
func (g *Graph) NextNeighbor(v, from int) (int, bool) {
	if !g.store.live.Has(v) {
		return -1, false
	}

	return g.store.neighbours(v).NextSet(from)
}
