// SPDX-License-Identifier: MIT
// Package core provides a fixed-capacity, simple, undirected Graph stored as
// one hierarchical bit index (package hibitset) per vertex slot.
//
// The Graph G = (V,E) is built for three fast paths:
//
//   - Edge mutation: AddEdge / RemoveEdge flip two bits, O(L).
//   - Neighbour scans: Neighbors / NextNeighbor skip empty 64^l-wide blocks.
//   - Edge contraction: ContractEdge merges v into u in O((deg u + deg v)·L),
//     the primitive behind graph-minor and treewidth algorithms.
//
// Model:
//
//	slots  0 … capacity-1      fixed at NewGraph, never resized
//	live   hibitset over slots bit v ⇔ slot v holds a vertex
//	adj[v] hibitset over slots neighbours of v (empty when v is not live)
//
// Invariants (hold after every call, including failed ones):
//
//   - Symmetry:    v ∈ adj[u] ⇔ u ∈ adj[v].
//   - No loops:    v ∉ adj[v].
//   - Liveness:    a non-live v has adj[v] = ∅ and appears in no adj[u].
//   - Atomicity:   a mutator either applies fully or returns an error before
//     changing any bit.
//
// Construction:
//
//	NewGraph(n)                 n free slots; grow with AddVertex()
//	NewGraph(n, WithAllLive())  all n slots live up front
//	WithLogger(l)               debug events for removal/contraction/exhaustion
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() (int, error)            // O(L), smallest free slot
//	RemoveVertex(v int) error           // O(deg(v)·L)
//	IsLive(v int) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error             // O(L), idempotent
//	RemoveEdge(u, v int) error          // O(L), idempotent
//	HasEdge(u, v int) bool              // O(1)
//	ContractEdge(u, v int) error        // O((deg u + deg v)·L)
//
//	// Unchecked fast paths: caller guarantees live, distinct (and adjacent) ids
//	AddEdgeUnchecked(u, v int)
//	RemoveEdgeUnchecked(u, v int)
//	ContractEdgeUnchecked(u, v int)
//
//	// Query
//	Degree(v int) (int, error)          // O(1)
//	Neighbors(v int) (iter.Seq[int], error)
//	NeighborIDs(v int) ([]int, error)
//	NextNeighbor(v, from int) (int, bool)
//	Vertices() iter.Seq[int], VertexIDs() []int
//	VertexCount(), EdgeCount(), Capacity(), Generation(), Stats()
//
//	// Copies and views
//	Clone(), CloneEmpty(), Clear(), InducedSubgraph(g, keep)
//	Export() *Export, Import(ex) (*Graph, error)
//
// Errors:
//
//	ErrOutOfRange        – id outside [0, capacity)
//	ErrUnknownVertex     – id not live
//	ErrSelfLoop          – AddEdge(v, v)
//	ErrNotAnEdge         – ContractEdge on a non-adjacent pair
//	ErrCapacityExceeded  – AddVertex with no free slot
//	ErrInvalidCapacity   – capacity ≤ 0 or > MaxCapacity
//	ErrGraphNil          – nil graph passed to InducedSubgraph
//	ErrInvalidExport     – inconsistent Export passed to Import
//
// Concurrency: a Graph is a single-owner container with no internal locking.
// Callers sharing one across goroutines must serialize all access.
//
// Memory: capacity² bits for the adjacency arena (plus ~1/63 for summaries),
// allocated once. MaxCapacity (65536) keeps that arena within
// hibitset.MaxArenaWords; 10,000 slots take about 13 MB.
package core
