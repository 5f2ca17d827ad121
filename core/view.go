// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Views keep vertex ids and capacity of the source; ids are never renumbered.
//   - The input Graph is never mutated.

package core

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/hibitset"
)

// InducedSubgraph returns a new Graph with the same capacity whose live
// vertices are exactly keep, and whose edges are those of g with both
// endpoints in keep. Duplicate ids in keep are ignored.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrOutOfRange / ErrUnknownVertex if any id in keep is not live in g.
// Complexity: O(Σ deg(v)·L) over kept vertices.
func InducedSubgraph(g *Graph, keep []int) (*Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("core: InducedSubgraph: %w", ErrGraphNil)
	}
	kept, _ := hibitset.New(g.store.capacity)
	for _, v := range keep {
		if err := g.checkLive("InducedSubgraph", v); err != nil {
			return nil, err
		}
		kept.Insert(v)
	}

	out, err := NewGraph(g.store.capacity, WithLogger(g.logger))
	if err != nil {
		return nil, fmt.Errorf("core: InducedSubgraph: %w", err)
	}
	for v, ok := kept.NextSet(0); ok; v, ok = kept.NextSet(v + 1) {
		out.store.activate(v)
	}
	var nb *hibitset.Set
	for v, ok := kept.NextSet(0); ok; v, ok = kept.NextSet(v + 1) {
		nb = g.store.neighbours(v)
		// Only w > v, so each undirected edge is copied once.
		for w, more := nb.NextSet(v + 1); more; w, more = nb.NextSet(w + 1) {
			if kept.Has(w) && out.store.link(v, w) {
				out.edges++
			}
		}
	}

	return out, nil
}
