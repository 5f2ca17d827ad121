// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep every vertex id, the live set and the free set, so AddVertex
//     on a clone returns the same id it would on the source.
//   - Generation() of a clone starts at zero.

package core

// CloneEmpty returns a new Graph with the same capacity, logger and live
// vertices, but no edges.
//
// Complexity: O(capacity/64) for the slot indexes plus one arena allocation.
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{initial: g.initial, logger: g.logger}
	store, _ := newAdjacencyStore(g.store.capacity, false) // capacity validated at construction
	_ = store.live.CopyFrom(g.store.live)
	_ = store.free.CopyFrom(g.store.free)
	clone.store = store

	return clone
}

// Clone returns a deep copy: live set, free set and every neighbour set.
//
// Complexity: O(V·capacity/64) word copies.
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for v, ok := g.store.live.NextSet(0); ok; v, ok = g.store.live.NextSet(v + 1) {
		_ = clone.store.neighbours(v).CopyFrom(g.store.neighbours(v))
	}
	clone.edges = g.edges

	return clone
}

// Clear removes every edge while keeping all vertices live.
//
// Complexity: O(E·L).
func (g *Graph) Clear() {
	if g.edges == 0 {
		return
	}
	for v, ok := g.store.live.NextSet(0); ok; v, ok = g.store.live.NextSet(v + 1) {
		g.store.neighbours(v).Reset()
	}
	g.edges = 0
	g.generation++
}
