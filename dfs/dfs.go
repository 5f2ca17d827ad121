// SPDX-License-Identifier: MIT
// File: dfs.go
// Role: Eager depth-first traversal (single-root and forest) on core.Graph.
//
// Key features:
//   - New(g, root, opts...): lazy pre-order Iterator, O(V+E) NextNeighbor calls overall
//   - DFS(g, root, opts...): eager traversal collecting Order, Depth, Parent
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth, FilterNeighbor with SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Fail-fast ErrConcurrentModification when the graph changes mid-walk
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if root is not live (single-root mode).
//   - ErrConcurrentModification if the graph is mutated during traversal.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/hibitset"
)

// DFS performs a depth-first traversal of g from root. With
// WithFullTraversal it continues from every unvisited live vertex in
// ascending order; a non-live root is then allowed and simply skipped.
// Returns the partial result together with any error that aborted the walk.
func DFS(g *core.Graph, root int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-root mode: verify root
	if !o.FullTraversal && !g.IsLive(root) {
		return nil, fmt.Errorf("dfs: root %d: %w", root, ErrStartVertexNotFound)
	}

	// 4. Initialize result
	visited, err := hibitset.New(g.Capacity())
	if err != nil {
		return nil, fmt.Errorf("dfs: visited index: %w", err)
	}
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: visited,
	}

	// 5. Traverse: root first, then the rest of the forest if requested
	if g.IsLive(root) {
		if err = walk(g, root, o, res); err != nil {
			return res, err
		}
	}
	if o.FullTraversal {
		gen := g.Generation()
		for v := range g.Vertices() {
			if visited.Has(v) {
				continue
			}
			if err = walk(g, v, o, res); err != nil {
				return res, err
			}
			if g.Generation() != gen {
				return res, ErrConcurrentModification
			}
		}
	}

	return res, nil
}

// walk drains one tree rooted at root into res, sharing res.Visited.
func walk(g *core.Graph, root int, o DFSOptions, res *DFSResult) error {
	it, err := newIterator(g, root, o, res.Visited)
	if err != nil {
		return err
	}
	defer func() { res.SkippedNeighbors += it.Skipped() }()

	for {
		// Cancellation is checked before Next so that nothing is marked
		// visited without also being recorded.
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		v, ok := it.Next()
		if !ok {
			break
		}

		res.Order = append(res.Order, v)
		res.Depth[v] = it.Depth()
		if p, hasParent := it.Parent(); hasParent {
			res.Parent[v] = p
		}

		// Pre-order hook
		if o.OnVisit != nil {
			if err = o.OnVisit(v); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
			}
		}
	}

	return it.Err()
}
