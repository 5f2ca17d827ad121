// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No mutation here.
//   - Stats() is an O(V·L) snapshot; use it for diagnostics and quick admission checks.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Capacity    int      // fixed number of vertex slots
	VertexCount int      // live vertices
	EdgeCount   int      // undirected edges
	FreeSlots   int      // Capacity - VertexCount
	MaxDegree   int      // largest degree over live vertices (0 for an empty graph)
	Isolated    int      // live vertices of degree 0
	Generation  uint64   // mutation counter at snapshot time
	Initial     Liveness // liveness mode the graph was built with
}

// InitialLiveness returns the liveness mode the graph was constructed with.
func (g *Graph) InitialLiveness() Liveness { return g.initial }

// Stats returns a snapshot of sizes and degree extremes.
//
// Complexity: O(V·L) – one pass over the live set; degrees are O(1) each.
func (g *Graph) Stats() *GraphStats {
	st := &GraphStats{
		Capacity:    g.store.capacity,
		VertexCount: g.VertexCount(),
		EdgeCount:   g.edges,
		FreeSlots:   g.store.free.Count(),
		Generation:  g.generation,
		Initial:     g.initial,
	}
	var d int
	for v, ok := g.store.live.NextSet(0); ok; v, ok = g.store.live.NextSet(v + 1) {
		d = g.store.neighbours(v).Count()
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 {
			st.Isolated++
		}
	}

	return st
}
