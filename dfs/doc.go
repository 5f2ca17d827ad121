// SPDX-License-Identifier: MIT
// Package dfs implements depth-first traversal over a core.Graph using only
// its public neighbour contract (NextNeighbor, IsLive, Generation).
//
// What:
//
//   - Iterator: lazy, stateful pre-order walk from a root. Neighbours are
//     visited in ascending id order. State is a stack of (vertex, cursor)
//     frames plus a private hibitset visited index, so each step is a single
//     NextNeighbor call that skips empty blocks of the adjacency bitmap.
//   - DFS: eager walk that records Order (pre-order), Depth and Parent, with
//     hooks, depth limit, neighbour filter, cancellation and forest mode.
//   - Components: connected components of the live vertices.
//   - DetectCycles: fundamental cycles of the DFS forest (one per back
//     edge), canonicalised and sorted.
//
// Traversal of:
//
//	0───1───2───3
//	    │
//	    4
//
// from 0 yields 0 1 2 3 4.
//
// Concurrent modification:
//
//	Every traversal snapshots g.Generation() at start. Any later mutation
//	(add/remove vertex or edge, contraction, Clear) makes the next step fail
//	with ErrConcurrentModification instead of producing undefined output.
//	Independent traversals never share visited state.
//
// Complexity:
//
//   - Iterator / DFS / Components / DetectCycles: O(V + E) NextNeighbor
//     calls, each O(L).
//   - Memory: O(capacity/64) for the visited index + O(depth) stack frames.
//
// Errors:
//
//   - ErrGraphNil               graph pointer is nil
//   - ErrStartVertexNotFound    root is not a live vertex
//   - ErrConcurrentModification graph mutated mid-traversal
//   - context.Canceled          DFS canceled via context
//   - hook errors               propagated (wrapped) from OnVisit
package dfs
