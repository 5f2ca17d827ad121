// SPDX-License-Identifier: MIT
package dfs_test

import (
	"testing"

	"github.com/katalvlaran/bitgraph/builder"
	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/dfs"
)

// BenchmarkIterator_Path10000 measures a full lazy walk of a 10,000-vertex path.
// Each step is one NextNeighbor call, so the walk is O(V·L).
func BenchmarkIterator_Path10000(b *testing.B) {
	g, err := builder.BuildGraph(10000, nil, nil, builder.Path(10000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, err := dfs.New(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

// BenchmarkDFS_Grid100x100 measures the eager walk over a 100×100 grid.
func BenchmarkDFS_Grid100x100(b *testing.B) {
	g, err := builder.BuildGraph(10000, nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dfs.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents_SparseForest measures component labelling on many
// small components spread across a large capacity.
func BenchmarkComponents_SparseForest(b *testing.B) {
	g, err := core.NewGraph(1<<13, core.WithAllLive())
	if err != nil {
		b.Fatal(err)
	}
	for v := 0; v+1 < g.Capacity(); v += 64 {
		if err = g.AddEdge(v, v+1); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dfs.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}
