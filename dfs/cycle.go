// SPDX-License-Identifier: MIT
// File: cycle.go
// Role: Cycle detection on undirected core.Graphs.
//
// DetectCycles walks every component with an explicit three-colour DFS
// (white = unvisited, gray = on the current path, black = finished). In an
// undirected simple graph every non-tree edge joins a vertex to a gray
// ancestor, and each such back edge closes exactly one cycle: the path
// segment from the ancestor down to the current vertex. The set returned is
// therefore the fundamental cycle basis of the DFS forest, and its size is
// E − V + C (C = number of components).
//
// Each cycle is reported closed ([v0 … vk v0]) and canonical: rotated to
// start at its smallest id, and oriented so that the second id is smaller
// than the last. The list is sorted lexicographically.
//
// Complexity:
//
//   - Time:   O((V + E)·L + Σ|cycle|)
//   - Memory: O(capacity/64) for the two colour indexes + O(depth) path.

package dfs

import (
	"slices"

	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/hibitset"
)

// cycleFrame is one level of the explicit path; parent is -1 for roots.
type cycleFrame struct {
	v, parent, cursor int
}

// DetectCycles reports whether g has a cycle and returns one cycle per back
// edge of its DFS forest, in canonical form and sorted order.
//
// Errors: ErrGraphNil.
func DetectCycles(g *core.Graph) (bool, [][]int, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	seen, err := hibitset.New(g.Capacity()) // gray or black
	if err != nil {
		return false, nil, err
	}
	onPath, _ := hibitset.New(g.Capacity()) // gray

	var (
		cycles [][]int
		path   []int
		stack  []cycleFrame
	)
	for root := range g.Vertices() {
		if seen.Has(root) {
			continue
		}
		seen.Insert(root)
		onPath.Insert(root)
		path = append(path[:0], root)
		stack = append(stack[:0], cycleFrame{v: root, parent: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			w, ok := g.NextNeighbor(top.v, top.cursor)
			if !ok {
				onPath.Delete(top.v)
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}
			top.cursor = w + 1
			switch {
			case w == top.parent:
				// tree edge back to the parent
			case onPath.Has(w):
				cycles = append(cycles, closeCycle(path, w))
			case !seen.Has(w):
				seen.Insert(w)
				onPath.Insert(w)
				path = append(path, w)
				stack = append(stack, cycleFrame{v: w, parent: top.v})
			}
		}
	}

	slices.SortFunc(cycles, slices.Compare[[]int])

	return len(cycles) > 0, cycles, nil
}

// closeCycle copies the path segment starting at ancestor and returns it
// closed and canonicalised.
func closeCycle(path []int, ancestor int) []int {
	seg := path[slices.Index(path, ancestor):]

	// rotate so the smallest id comes first
	minAt := 0
	for i, v := range seg {
		if v < seg[minAt] {
			minAt = i
		}
	}
	cyc := slices.Concat(seg[minAt:], seg[:minAt])

	// orient so that the second id is smaller than the last
	if len(cyc) > 2 && cyc[1] > cyc[len(cyc)-1] {
		slices.Reverse(cyc[1:])
	}

	return append(cyc, cyc[0])
}
