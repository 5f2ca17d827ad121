// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/hibitset"
)

// Components returns the connected components of the live vertices.
// Each component lists its vertices in DFS pre-order from its smallest id;
// components are ordered by that smallest id.
//
// Errors: ErrGraphNil, ErrConcurrentModification.
// Complexity: O((V+E)·L).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	visited, err := hibitset.New(g.Capacity())
	if err != nil {
		return nil, fmt.Errorf("dfs: visited index: %w", err)
	}

	o := DefaultOptions()
	var comps [][]int
	for v := range g.Vertices() {
		if visited.Has(v) {
			continue
		}
		it, err := newIterator(g, v, o, visited)
		if err != nil {
			return nil, err
		}
		var comp []int
		for w, ok := it.Next(); ok; w, ok = it.Next() {
			comp = append(comp, w)
		}
		if err = it.Err(); err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
