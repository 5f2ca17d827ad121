// SPDX-License-Identifier: MIT
// File: iterator.go
// Role: Lazy pre-order depth-first iterator.
// State machine:
//   - stack of (vertex, cursor) frames + private visited index.
//   - step: ask the top frame for the next neighbour ≥ cursor; descend into an
//     unvisited one, otherwise pop when the frame is exhausted.
//   - terminal: empty stack.
// Safety:
//   - The iterator keeps no reference into bit storage; it polls the graph by id
//     and compares Generation() on every step.

package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/hibitset"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	v      int // vertex being explored
	cursor int // next neighbour id to scan from
	depth  int // tree depth of v
}

// Iterator yields live vertices reachable from a root in depth-first
// pre-order, visiting neighbours in ascending id order.
//
// An Iterator is stateful and single-use. Any mutation of the graph after
// New makes the next call to Next fail with ErrConcurrentModification.
type Iterator struct {
	g       *core.Graph
	gen     uint64
	visited *hibitset.Set
	stack   []frame

	root    int
	started bool
	err     error

	maxDepth int
	filter   func(int) bool
	skipped  int
}

// New starts a traversal at root. The root is the first vertex returned by
// Next and is marked visited when it is returned.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound.
// Complexity: O(capacity/64) to allocate the visited index.
func New(g *core.Graph, root int, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	visited, err := hibitset.New(g.Capacity())
	if err != nil {
		return nil, fmt.Errorf("dfs: visited index: %w", err)
	}

	return newIterator(g, root, o, visited)
}

// newIterator builds an iterator sharing visited, which lets DFS run several
// trees of one forest without revisiting vertices.
func newIterator(g *core.Graph, root int, o DFSOptions, visited *hibitset.Set) (*Iterator, error) {
	if !g.IsLive(root) {
		return nil, fmt.Errorf("dfs: root %d: %w", root, ErrStartVertexNotFound)
	}

	return &Iterator{
		g:        g,
		gen:      g.Generation(),
		visited:  visited,
		stack:    []frame{{v: root}},
		root:     root,
		maxDepth: o.MaxDepth,
		filter:   o.FilterNeighbor,
	}, nil
}

// Next returns the next vertex in pre-order, or (-1, false) when the
// traversal is finished or has failed; check Err afterwards.
func (it *Iterator) Next() (int, bool) {
	if it.err != nil {
		return -1, false
	}
	if it.g.Generation() != it.gen {
		it.err = ErrConcurrentModification
		it.stack = nil

		return -1, false
	}
	if !it.started {
		it.started = true
		it.visited.Insert(it.root)

		return it.root, true
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if it.maxDepth >= 0 && top.depth >= it.maxDepth {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		w, ok := it.g.NextNeighbor(top.v, top.cursor)
		if !ok {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		top.cursor = w + 1
		if it.visited.Has(w) {
			continue
		}
		if it.filter != nil && !it.filter(w) {
			it.skipped++
			continue
		}
		it.visited.Insert(w)
		it.stack = append(it.stack, frame{v: w, depth: top.depth + 1})

		return w, true
	}

	return -1, false
}

// Err returns the error that stopped the traversal, if any.
func (it *Iterator) Err() error { return it.err }

// Depth returns the tree depth of the vertex most recently returned by Next.
func (it *Iterator) Depth() int {
	if len(it.stack) == 0 {
		return 0
	}

	return it.stack[len(it.stack)-1].depth
}

// Parent returns the vertex from which the most recently returned vertex was
// discovered; false for the root.
func (it *Iterator) Parent() (int, bool) {
	if len(it.stack) < 2 {
		return -1, false
	}

	return it.stack[len(it.stack)-2].v, true
}

// Skipped returns how many neighbours FilterNeighbor has rejected so far.
func (it *Iterator) Skipped() int { return it.skipped }

// All adapts the iterator to a range-over-func sequence. The sequence ends
// early on error; check Err after the loop.
func (it *Iterator) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
