// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/RemoveVertex/IsLive/Vertices/VertexCount/Degree.
// Determinism:
//   - AddVertex always returns the smallest free slot, so ids are reused after removal.
//   - Vertices()/VertexIDs() yield live ids in ascending order.

package core

import (
	"fmt"
	"iter"
	"log/slog"
)

// Capacity returns the fixed number of vertex slots.
func (g *Graph) Capacity() int { return g.store.capacity }

// VertexCount returns the number of live vertices. O(1).
func (g *Graph) VertexCount() int { return g.store.live.Count() }

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Generation returns a counter that changes whenever the graph is mutated.
// Failed and no-op operations leave it untouched.
func (g *Graph) Generation() uint64 { return g.generation }

// IsLive reports whether slot v currently holds a vertex.
// Out-of-range ids are reported as not live.
func (g *Graph) IsLive(v int) bool { return g.store.live.Has(v) }

// AddVertex makes the smallest free slot live and returns its id.
// The new vertex has no neighbours.
//
// Errors: ErrCapacityExceeded if every slot is live.
// Complexity: O(L) via the free-slot index.
func (g *Graph) AddVertex() (int, error) {
	v, ok := g.store.free.NextSet(0)
	if !ok {
		g.logger.Debug("vertex capacity exhausted", slog.Int("capacity", g.store.capacity))

		return -1, fmt.Errorf("core: AddVertex: %d of %d slots live: %w",
			g.VertexCount(), g.store.capacity, ErrCapacityExceeded)
	}
	g.store.activate(v)
	g.generation++

	return v, nil
}

// RemoveVertex deletes v and every edge incident to it, freeing its slot.
//
// Steps:
//  1. Validate v.
//  2. For every neighbour w, clear bit v in adj[w].
//  3. Empty adj[v] and return the slot to the free set.
//
// Errors: ErrOutOfRange, ErrUnknownVertex.
// Complexity: O(deg(v)·L).
func (g *Graph) RemoveVertex(v int) error {
	if err := g.checkLive("RemoveVertex", v); err != nil {
		return err
	}

	nb := g.store.neighbours(v)
	deg := nb.Count()
	for w, ok := nb.NextSet(0); ok; w, ok = nb.NextSet(w + 1) {
		g.store.neighbours(w).Delete(v)
	}
	g.store.retire(v)
	g.edges -= deg
	g.generation++

	g.logger.Debug("vertex removed", slog.Int("vertex", v), slog.Int("degree", deg))

	return nil
}

// Degree returns the number of neighbours of v. O(1).
//
// Errors: ErrOutOfRange, ErrUnknownVertex.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkLive("Degree", v); err != nil {
		return 0, err
	}

	return g.store.neighbours(v).Count(), nil
}

// Vertices returns an ascending iterator over live vertex ids.
// Mutating the graph while iterating yields unspecified results.
func (g *Graph) Vertices() iter.Seq[int] {
	return g.store.live.All()
}

// VertexIDs returns the live vertex ids in ascending order.
// Complexity: O(V·L).
func (g *Graph) VertexIDs() []int {
	return g.store.live.AppendTo(make([]int, 0, g.VertexCount()))
}

// checkLive validates that v addresses a live slot; op prefixes the error context.
func (g *Graph) checkLive(op string, v int) error {
	if !g.store.inRange(v) {
		return fmt.Errorf("core: %s: vertex %d not in [0,%d): %w", op, v, g.store.capacity, ErrOutOfRange)
	}
	if !g.store.live.Has(v) {
		return fmt.Errorf("core: %s: vertex %d: %w", op, v, ErrUnknownVertex)
	}

	return nil
}
