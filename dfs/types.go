// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, functional options and the eager result type.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/bitgraph/hibitset"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New, DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the root is not a live vertex.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrConcurrentModification indicates the graph was mutated while a
	// traversal over it was in progress.
	ErrConcurrentModification = errors.New("dfs: graph modified during traversal")
)

// Option configures optional behavior of a traversal.
// Use with New(g, root, opts...) or DFS(g, root, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for traversal.
// Iterator honors MaxDepth and FilterNeighbor; DFS honors all fields.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per emitted vertex by DFS.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is emitted (pre-order).
	// Returning an error aborts DFS with that error.
	OnVisit func(v int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each unvisited neighbour;
	// returning false skips it without marking it visited.
	FilterNeighbor func(v int) bool

	// FullTraversal, if true, makes DFS restart from every unvisited live
	// vertex in ascending order once the root's component is exhausted.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit, no filter and single-root traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext sets the context for DFS. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth to limit (0 = root only).
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal makes DFS cover every component (forest traversal).
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of an eager traversal.
type DFSResult struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []int

	// Depth maps each visited vertex to its distance in tree edges from its root.
	Depth map[int]int

	// Parent maps each non-root visited vertex to the vertex it was discovered from.
	Parent map[int]int

	// Visited holds every vertex reached. Private to this result.
	Visited *hibitset.Set

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor across all trees.
	SkippedNeighbors int
}
