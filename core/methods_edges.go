// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge.
// Contract:
//   - Edges are undirected and simple; both bits {u→v, v→u} change together.
//   - All validation happens before any bit is touched.
//   - AddEdge/RemoveEdge are idempotent; no-ops leave Generation() unchanged.

package core

import "fmt"

// AddEdge connects u and v.
//
// Errors:
//   - ErrOutOfRange / ErrUnknownVertex if either endpoint is not live.
//   - ErrSelfLoop if u == v.
//
// Complexity: O(L) – two hierarchical set operations.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkPair("AddEdge", u, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.store.link(u, v) {
		g.edges++
		g.generation++
	}

	return nil
}

// RemoveEdge disconnects u and v; removing an absent edge is a no-op.
//
// Errors: ErrOutOfRange / ErrUnknownVertex if either endpoint is not live.
// Complexity: O(L).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkPair("RemoveEdge", u, v); err != nil {
		return err
	}
	if g.store.unlink(u, v) {
		g.edges--
		g.generation++
	}

	return nil
}

// AddEdgeUnchecked connects u and v without validating them.
// The caller guarantees that u and v are live and distinct; anything else
// breaks the graph's invariants, and out-of-range ids panic.
// Complexity: O(L).
func (g *Graph) AddEdgeUnchecked(u, v int) {
	if g.store.link(u, v) {
		g.edges++
		g.generation++
	}
}

// RemoveEdgeUnchecked disconnects u and v without validating them.
// Same caller contract as AddEdgeUnchecked.
func (g *Graph) RemoveEdgeUnchecked(u, v int) {
	if g.store.unlink(u, v) {
		g.edges--
		g.generation++
	}
}

// HasEdge reports whether u and v are adjacent. Unknown or out-of-range
// endpoints simply report false. O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.store.inRange(u) {
		return false
	}

	return g.store.neighbours(u).Has(v)
}

func (g *Graph) checkPair(op string, u, v int) error {
	if err := g.checkLive(op, u); err != nil {
		return err
	}

	return g.checkLive(op, v)
}
