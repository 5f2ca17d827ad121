// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/core"
)

func TestExportImport_RoundTrip(t *testing.T) {
	g := mustGraph(t, CapMedium)
	addVertices(t, g, 80)
	addEdges(t, g, [2]int{0, 79}, [2]int{3, 64}, [2]int{3, 65}, [2]int{64, 65})
	require.NoError(t, g.RemoveVertex(10))

	ex := g.Export()
	assert.Equal(t, CapMedium, ex.Capacity)
	assert.Equal(t, uint64(79), ex.Live.GetCardinality())
	assert.False(t, ex.Live.Contains(10))
	assert.Equal(t, []uint32{64, 65}, ex.Adjacency[3].ToArray())
	assert.Equal(t, g.EdgeCount(), ex.EdgeCount())

	h, err := core.Import(ex)
	require.NoError(t, err)
	assert.Equal(t, g.VertexIDs(), h.VertexIDs())
	assert.Equal(t, g.EdgeCount(), h.EdgeCount())
	for _, v := range g.VertexIDs() {
		assert.Equal(t, neighbours(t, g, v), neighbours(t, h, v), "vertex %d", v)
	}
	requireInvariants(t, h)

	require.NoError(t, g.AddEdge(0, 1))
	assert.False(t, ex.Adjacency[0].Contains(1), "export is a snapshot")
}

func TestImport_Invalid(t *testing.T) {
	live := roaring.BitmapOf(0, 1, 2)
	cases := map[string]struct {
		ex   *core.Export
		want error
	}{
		"nil":             {nil, core.ErrInvalidExport},
		"no live set":     {&core.Export{Capacity: 3}, core.ErrInvalidExport},
		"bad capacity":    {&core.Export{Capacity: 0, Live: roaring.New()}, core.ErrInvalidCapacity},
		"huge capacity":   {&core.Export{Capacity: core.MaxCapacity + 1, Live: roaring.New()}, core.ErrInvalidCapacity},
		"live out of cap": {&core.Export{Capacity: 2, Live: live}, core.ErrInvalidExport},
		"non-live key": {&core.Export{Capacity: 5, Live: live, Adjacency: map[uint32]*roaring.Bitmap{
			4: roaring.New(),
		}}, core.ErrInvalidExport},
		"self-loop": {&core.Export{Capacity: 3, Live: live, Adjacency: map[uint32]*roaring.Bitmap{
			1: roaring.BitmapOf(1),
		}}, core.ErrInvalidExport},
		"non-live neighbour": {&core.Export{Capacity: 5, Live: live, Adjacency: map[uint32]*roaring.Bitmap{
			0: roaring.BitmapOf(3),
		}}, core.ErrInvalidExport},
		"asymmetric": {&core.Export{Capacity: 3, Live: live, Adjacency: map[uint32]*roaring.Bitmap{
			0: roaring.BitmapOf(1),
			1: roaring.New(),
		}}, core.ErrInvalidExport},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := core.Import(tc.ex)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
