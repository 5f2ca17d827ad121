// SPDX-License-Identifier: MIT
// File: export.go
// Role: Bulk export/import of the live vertex set and neighbour sets as roaring
//       bitmaps, the hand-off format for external serializers.
// Contract:
//   - Export is a snapshot; later graph mutations do not affect it.
//   - Import validates liveness, range, self-loops and symmetry before
//     building anything, and never returns a partially built Graph.

package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Export is a self-contained snapshot of a Graph.
type Export struct {
	// Capacity is the number of vertex slots of the source graph.
	Capacity int

	// Live holds the live vertex ids.
	Live *roaring.Bitmap

	// Adjacency maps every live vertex id to its neighbour ids.
	Adjacency map[uint32]*roaring.Bitmap
}

// Export snapshots the live vertices and their neighbour sets.
// Complexity: O((V+E)·L).
func (g *Graph) Export() *Export {
	ex := &Export{
		Capacity:  g.store.capacity,
		Live:      roaring.New(),
		Adjacency: make(map[uint32]*roaring.Bitmap, g.VertexCount()),
	}
	for v, ok := g.store.live.NextSet(0); ok; v, ok = g.store.live.NextSet(v + 1) {
		ex.Live.Add(uint32(v))
		bm := roaring.New()
		nb := g.store.neighbours(v)
		for w, more := nb.NextSet(0); more; w, more = nb.NextSet(w + 1) {
			bm.Add(uint32(w))
		}
		ex.Adjacency[uint32(v)] = bm
	}

	return ex
}

// EdgeCount returns the number of undirected edges described by the export.
func (ex *Export) EdgeCount() int {
	var degrees uint64
	for _, bm := range ex.Adjacency {
		degrees += bm.GetCardinality()
	}

	return int(degrees / 2)
}

// Import builds a Graph from an Export. opts are applied as in NewGraph;
// the initial liveness option is ignored because Live decides it.
//
// Errors:
//   - ErrInvalidCapacity for an invalid Capacity.
//   - ErrInvalidExport when Live is nil, an id is out of range, an adjacency
//     entry belongs to a non-live vertex, names a non-live neighbour,
//     contains a self-loop, or is not mirrored by its neighbour.
func Import(ex *Export, opts ...GraphOption) (*Graph, error) {
	if ex == nil || ex.Live == nil {
		return nil, fmt.Errorf("core: Import: missing live set: %w", ErrInvalidExport)
	}
	if err := validateExport(ex); err != nil {
		return nil, err
	}

	// Copy so the caller's slice is never appended to.
	gopts := make([]GraphOption, 0, len(opts)+1)
	gopts = append(gopts, opts...)
	gopts = append(gopts, WithInitialLiveness(LiveNone))
	g, err := NewGraph(ex.Capacity, gopts...)
	if err != nil {
		return nil, fmt.Errorf("core: Import: %w", err)
	}
	it := ex.Live.Iterator()
	for it.HasNext() {
		g.store.activate(int(it.Next()))
	}
	for v, bm := range ex.Adjacency {
		if bm == nil {
			continue
		}
		bm.Iterate(func(w uint32) bool {
			if w > v && g.store.link(int(v), int(w)) {
				g.edges++
			}
			return true
		})
	}

	return g, nil
}

func validateExport(ex *Export) error {
	if ex.Capacity <= 0 || ex.Capacity > MaxCapacity {
		return fmt.Errorf("core: Import: capacity %d: %w", ex.Capacity, ErrInvalidCapacity)
	}
	if !ex.Live.IsEmpty() && int64(ex.Live.Maximum()) >= int64(ex.Capacity) {
		return fmt.Errorf("core: Import: live id %d ≥ capacity %d: %w",
			ex.Live.Maximum(), ex.Capacity, ErrInvalidExport)
	}

	var bad error
	for v, bm := range ex.Adjacency {
		if !ex.Live.Contains(v) {
			return fmt.Errorf("core: Import: adjacency for non-live vertex %d: %w", v, ErrInvalidExport)
		}
		if bm == nil {
			continue
		}
		bm.Iterate(func(w uint32) bool {
			switch {
			case w == v:
				bad = fmt.Errorf("core: Import: self-loop at %d: %w", v, ErrInvalidExport)
			case !ex.Live.Contains(w):
				bad = fmt.Errorf("core: Import: %d lists non-live neighbour %d: %w", v, w, ErrInvalidExport)
			case ex.Adjacency[w] == nil || !ex.Adjacency[w].Contains(v):
				bad = fmt.Errorf("core: Import: edge %d-%d not mirrored: %w", v, w, ErrInvalidExport)
			}
			return bad == nil
		})
		if bad != nil {
			return bad
		}
	}

	return nil
}
