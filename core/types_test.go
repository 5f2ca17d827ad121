// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/hibitset"
)

func TestNewGraph_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -3, core.MaxCapacity + 1} {
		g, err := core.NewGraph(c)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrInvalidCapacity, "capacity %d", c)
	}
}

// TestNewGraph_MaxCapacityFitsArena checks that the documented bound is
// exactly the largest power of two whose arena fits the word budget, so
// every accepted capacity allocates and every larger one errors up front.
func TestNewGraph_MaxCapacityFitsArena(t *testing.T) {
	_, ok := hibitset.ArenaWords(core.MaxCapacity, core.MaxCapacity)
	assert.True(t, ok)
	_, ok = hibitset.ArenaWords(2*core.MaxCapacity, 2*core.MaxCapacity)
	assert.False(t, ok)

	for _, c := range []int{core.MaxCapacity + 1, 1 << 20, hibitset.MaxCapacity} {
		g, err := core.NewGraph(c, core.WithAllLive())
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrInvalidCapacity, "capacity %d", c)
	}
}

func TestNewGraph_DefaultLiveNone(t *testing.T) {
	g := mustGraph(t, CapSmall)
	assert.Equal(t, CapSmall, g.Capacity())
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, core.LiveNone, g.InitialLiveness())
	for v := 0; v < CapSmall; v++ {
		assert.False(t, g.IsLive(v))
	}
}

func TestNewGraph_AllLive(t *testing.T) {
	g := mustGraph(t, CapMedium, core.WithAllLive())
	assert.Equal(t, CapMedium, g.VertexCount())
	assert.Equal(t, core.LiveAll, g.InitialLiveness())
	assert.Equal(t, 0, g.EdgeCount())

	_, err := g.AddVertex()
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	requireInvariants(t, g)
}

func TestLiveness_String(t *testing.T) {
	assert.Equal(t, "none", core.LiveNone.String())
	assert.Equal(t, "all", core.LiveAll.String())
	assert.Equal(t, "unknown", core.Liveness(9).String())
}

func TestErrOutOfRange_SharedWithHibitset(t *testing.T) {
	g := mustGraph(t, CapSmall, core.WithAllLive())
	err := g.AddEdge(0, CapSmall)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	assert.ErrorIs(t, err, hibitset.ErrOutOfRange)
}
