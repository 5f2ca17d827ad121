// SPDX-License-Identifier: MIT
// Package bitgraph is a fixed-capacity, in-memory, simple undirected graph
// built on hierarchical bitmaps.
//
// Capacity is chosen once at construction; every vertex is a dense integer
// id in [0, capacity). Adjacency is one bit per ordered pair, held in
// hierarchical bit indexes whose summary layers turn "next neighbour ≥ k"
// into an O(layers) query. On top of that the graph offers fast edge
// mutation, depth-first traversal and edge contraction.
//
// Layout:
//
//	hibitset/ — hierarchical bit index (set/clear/test/next-set/union) and its arena
//	core/     — Graph: vertex slots, symmetric adjacency, contraction, export/import
//	dfs/      — lazy pre-order iterator, eager DFS, connected components
//	builder/  — deterministic topology constructors (path, cycle, grid, G(n,p) …)
//	examples/ — runnable walkthroughs (go run ./examples)
//
// Quick example:
//
//	g, _ := core.NewGraph(5)
//	for i := 0; i < 4; i++ {
//		g.AddVertex() // 0, 1, 2, 3
//	}
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	it, _ := dfs.New(g, 0) // 0 1 2 3
//	g.ContractEdge(1, 2)   // 1 keeps {0,3}; slot 2 is freed
//
// The Graph is a single-owner container: it has no internal locking, and
// callers that share it across goroutines must serialise access.
package bitgraph
