// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for bitgraph/core.
//
// Purpose:
//   - Small deterministic fixtures for core.Graph.
//   - A full invariant check (symmetry, no loops, liveness, counts) callable after any step.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/core"
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	CapSmall  = 5
	CapMedium = 130 // spans three layer-0 words and two layers
	CapLarge  = 5000
)

// mustGraph builds a Graph or fails the test.
func mustGraph(t testing.TB, capacity int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(capacity, opts...)
	require.NoError(t, err)

	return g
}

// addVertices adds n vertices and returns their ids in insertion order.
func addVertices(t testing.TB, g *core.Graph, n int) []int {
	t.Helper()
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.AddVertex()
		require.NoError(t, err)
		ids = append(ids, v)
	}

	return ids
}

// addEdges adds every pair in edges or fails the test.
func addEdges(t testing.TB, g *core.Graph, edges ...[2]int) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}
}

// neighbours returns NeighborIDs(v) or fails the test.
func neighbours(t testing.TB, g *core.Graph, v int) []int {
	t.Helper()
	ids, err := g.NeighborIDs(v)
	require.NoError(t, err)

	return ids
}

// requireInvariants checks every structural invariant of g by brute force.
func requireInvariants(t testing.TB, g *core.Graph) {
	t.Helper()
	degreeSum := 0
	for u := 0; u < g.Capacity(); u++ {
		require.False(t, g.HasEdge(u, u), "self-loop at %d", u)
		if !g.IsLive(u) {
			for w := 0; w < g.Capacity(); w++ {
				require.False(t, g.HasEdge(u, w), "non-live %d has neighbour %d", u, w)
				require.False(t, g.HasEdge(w, u), "%d points at non-live %d", w, u)
			}
			continue
		}
		nb := neighbours(t, g, u)
		d, err := g.Degree(u)
		require.NoError(t, err)
		require.Len(t, nb, d, "degree of %d", u)
		degreeSum += d
		for _, w := range nb {
			require.True(t, g.IsLive(w), "%d adjacent to non-live %d", u, w)
			require.True(t, g.HasEdge(w, u), "asymmetric edge %d-%d", u, w)
		}
	}
	require.Equal(t, 0, degreeSum%2, "degree sum must be even")
	require.Equal(t, 2*g.EdgeCount(), degreeSum, "degree sum vs edge count")
}
