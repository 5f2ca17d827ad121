// SPDX-License-Identifier: MIT
// File: methods_contract.go
// Role: Edge contraction (merge v into u).
// Post-conditions of ContractEdge(u, v):
//   - N'(u) = (N(u) ∪ N(v)) \ {u, v}.
//   - v is not live and appears in no neighbour set.
//   - Every former neighbour w of v (w ≠ u) is adjacent to u exactly once.
// Cost:
//   - O((deg(u)+deg(v))·L); unrelated vertices are never scanned.

package core

import (
	"fmt"
	"log/slog"
)

// ContractEdge merges v into u: u survives with the union of both neighbour
// sets (minus u and v), v is retired and its slot freed.
//
// Steps:
//  1. Validate u, v and require the edge {u,v}.
//  2. adj[u] |= adj[v].
//  3. Clear bits u and v from adj[u].
//  4. For every w ∈ adj[v], w ≠ u: clear v from adj[w], set u in adj[w].
//  5. Empty adj[v], mark v free.
//
// adj[v] is only read during step 4, so no snapshot of it is taken.
//
// Errors:
//   - ErrOutOfRange / ErrUnknownVertex if either endpoint is not live.
//   - ErrNotAnEdge if u and v are not adjacent (including u == v).
func (g *Graph) ContractEdge(u, v int) error {
	if err := g.checkPair("ContractEdge", u, v); err != nil {
		return err
	}
	if !g.store.neighbours(u).Has(v) {
		return fmt.Errorf("core: ContractEdge(%d,%d): %w", u, v, ErrNotAnEdge)
	}
	g.ContractEdgeUnchecked(u, v)

	return nil
}

// ContractEdgeUnchecked is ContractEdge without validation. The caller
// guarantees that u and v are live and adjacent; anything else corrupts
// the graph, and out-of-range ids panic.
func (g *Graph) ContractEdgeUnchecked(u, v int) {
	nu, nv := g.store.neighbours(u), g.store.neighbours(v)
	degU, degV := nu.Count(), nv.Count()

	g.store.merge(u, v)
	nu.Delete(u)
	nu.Delete(v)

	for w, ok := nv.NextSet(0); ok; w, ok = nv.NextSet(w + 1) {
		if w == u {
			continue
		}
		adjW := g.store.neighbours(w)
		adjW.Delete(v)
		adjW.Insert(u) // no-op when w was already adjacent to u
	}
	g.store.retire(v)

	// v's degV edges disappear; u keeps degU-1 old edges and gains the rest.
	degMerged := nu.Count()
	g.edges += (degMerged - (degU - 1)) - degV
	g.generation++

	g.logger.Debug("edge contracted",
		slog.Int("survivor", u),
		slog.Int("retired", v),
		slog.Int("degree", degMerged),
	)
}
