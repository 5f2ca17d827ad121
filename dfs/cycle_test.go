// SPDX-License-Identifier: MIT
package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/builder"
	"github.com/katalvlaran/bitgraph/dfs"
)

// TestDetectCycles_NilGraph verifies the nil guard.
func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

// TestDetectCycles_Forest ensures trees and isolated vertices have no cycle.
func TestDetectCycles_Forest(t *testing.T) {
	g, err := builder.BuildGraph(32, nil, nil, builder.Path(5), builder.Star(4), builder.Complete(1))
	require.NoError(t, err)

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

// TestDetectCycles_Shapes covers canonical rotation, orientation and order.
func TestDetectCycles_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  [][]int
	}{
		{
			name:  "Triangle",
			n:     3,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 0}},
			want:  [][]int{{0, 1, 2, 0}},
		},
		{
			name:  "Square",
			n:     4,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			want:  [][]int{{0, 1, 2, 3, 0}},
		},
		{
			name:  "K4",
			n:     4,
			edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
			want:  [][]int{{0, 1, 2, 0}, {0, 1, 2, 3, 0}, {1, 2, 3, 1}},
		},
		{
			// 0 hangs off a square 1-4-2-3 that DFS enters at 3 and walks
			// 3→1→4→2; the report is rotated to 1 and reoriented.
			name:  "ReorientedSquare",
			n:     5,
			edges: [][2]int{{0, 3}, {3, 1}, {1, 4}, {4, 2}, {2, 3}},
			want:  [][]int{{1, 3, 2, 4, 1}},
		},
		{
			name:  "TwoComponents",
			n:     7,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 6}, {6, 3}},
			want:  [][]int{{0, 1, 2, 0}, {3, 4, 5, 6, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := graphWith(t, 16, tc.n, tc.edges...)
			has, cycles, err := dfs.DetectCycles(g)
			require.NoError(t, err)
			assert.True(t, has)
			assert.Equal(t, tc.want, cycles)
		})
	}
}

// TestDetectCycles_CycleRank checks on random graphs that one cycle is
// reported per independent cycle (E − V + C) and that every reported cycle
// is a simple closed walk over existing edges.
func TestDetectCycles_CycleRank(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 5; trial++ {
		g, err := builder.BuildGraph(200, nil,
			[]builder.BuilderOption{builder.WithRand(rng)},
			builder.RandomSparse(200, 0.012))
		require.NoError(t, err)
		for v := 3; v < 200; v += 17 {
			require.NoError(t, g.RemoveVertex(v))
		}

		comps, err := dfs.Components(g)
		require.NoError(t, err)
		_, cycles, err := dfs.DetectCycles(g)
		require.NoError(t, err)
		require.Len(t, cycles, g.EdgeCount()-g.VertexCount()+len(comps), "trial %d", trial)

		for _, c := range cycles {
			require.GreaterOrEqual(t, len(c), 4, "closed cycle needs three distinct vertices")
			require.Equal(t, c[0], c[len(c)-1])
			distinct := map[int]bool{}
			for i := 0; i+1 < len(c); i++ {
				require.True(t, g.HasEdge(c[i], c[i+1]), "missing edge %d-%d in %v", c[i], c[i+1], c)
				require.False(t, distinct[c[i]], "repeated vertex in %v", c)
				distinct[c[i]] = true
			}
		}
	}
}
