// SPDX-License-Identifier: MIT
// Package core defines the fixed-capacity, bit-packed undirected Graph.
//
// This file declares Graph, Liveness, GraphOption, the sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrOutOfRange        - vertex id outside [0, capacity).
//	ErrUnknownVertex     - vertex id in range but not live.
//	ErrSelfLoop          - edge from a vertex to itself.
//	ErrNotAnEdge         - contraction of a non-adjacent pair.
//	ErrCapacityExceeded  - AddVertex with every slot live.
//	ErrInvalidCapacity   - capacity ≤ 0 or above MaxCapacity.
//	ErrGraphNil          - nil graph passed to InducedSubgraph.
//	ErrInvalidExport     - Import of an inconsistent Export.
package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bitgraph/hibitset"
)

// MaxCapacity is the largest vertex capacity a Graph accepts: the largest
// power of two whose adjacency arena (capacity sets of capacity bits) fits
// hibitset.MaxArenaWords. At this size the arena takes about 546 MB.
const MaxCapacity = 1 << 16

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRange indicates a vertex id outside [0, capacity).
	// It is the same value as hibitset.ErrOutOfRange.
	ErrOutOfRange = hibitset.ErrOutOfRange

	// ErrInvalidCapacity indicates a construction capacity ≤ 0 or above MaxCapacity.
	// It is the same value as hibitset.ErrInvalidCapacity.
	ErrInvalidCapacity = hibitset.ErrInvalidCapacity

	// ErrUnknownVertex indicates an operation referenced a vertex slot that is not live.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNotAnEdge indicates a contraction requested on a non-adjacent pair.
	ErrNotAnEdge = errors.New("core: vertices are not adjacent")

	// ErrCapacityExceeded indicates AddVertex found no free slot.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrGraphNil indicates a nil *Graph was passed to a package-level function.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrInvalidExport indicates Import was given a structurally inconsistent Export.
	ErrInvalidExport = errors.New("core: invalid export")
)

// Liveness selects which vertex slots are live right after construction.
type Liveness int

const (
	// LiveNone starts with every slot free; vertices are added with AddVertex.
	LiveNone Liveness = iota

	// LiveAll starts with every slot in [0, capacity) live.
	LiveAll
)

// String implements fmt.Stringer.
func (l Liveness) String() string {
	switch l {
	case LiveNone:
		return "none"
	case LiveAll:
		return "all"
	default:
		return "unknown"
	}
}

// GraphOption configures a Graph before its storage is allocated.
type GraphOption func(g *Graph)

// WithInitialLiveness selects the initial live set (LiveNone by default).
func WithInitialLiveness(mode Liveness) GraphOption {
	return func(g *Graph) { g.initial = mode }
}

// WithAllLive is shorthand for WithInitialLiveness(LiveAll).
func WithAllLive() GraphOption {
	return WithInitialLiveness(LiveAll)
}

// WithLogger attaches a structured logger. Vertex retirement, contraction and
// capacity exhaustion are reported at debug level; edge operations never log.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph is a simple undirected graph over a fixed set of vertex slots [0, capacity).
//
// Every slot owns one hierarchical bit index holding its neighbour set; all
// slots are carved from a single arena and addressed by integer id only.
// The Graph is a single-owner container: it performs no locking, and callers
// sharing it across goroutines must serialize access.
//
// generation increments on every applied mutation so that traversals can
// detect concurrent modification.
type Graph struct {
	store *adjacencyStore

	edges      int    // number of undirected edges
	generation uint64 // bumped by every applied mutation

	initial Liveness
	logger  *slog.Logger
}

// NewGraph creates a Graph with capacity vertex slots and no edges.
// By default no slot is live; WithAllLive makes every slot live.
//
// Errors: ErrInvalidCapacity if capacity ≤ 0 or capacity > MaxCapacity.
// Complexity: O(capacity²/64) words allocated in one block.
func NewGraph(capacity int, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		initial: LiveNone,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("core: NewGraph: %w: %d not in [1,%d]", ErrInvalidCapacity, capacity, MaxCapacity)
	}
	store, err := newAdjacencyStore(capacity, g.initial == LiveAll)
	if err != nil {
		return nil, err
	}
	g.store = store

	return g, nil
}
