// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// helpers.go - vertex allocation and edge emission shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/core"
)

// addVertices allocates n fresh vertices and returns their ids in allocation
// order. Constructors address their own vertices through this slice, so they
// compose on one graph without assuming which slots are free.
// Complexity: O(n·L).
func addVertices(method string, g *core.Graph, n int) ([]int, error) {
	ids := make([]int, n)
	for i := range ids {
		v, err := g.AddVertex()
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex #%d: %w", method, i, err)
		}
		ids[i] = v
	}

	return ids, nil
}

// addEdge connects u and v, wrapping failures with the method tag.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair of ids (i<j order).
// Complexity: O(len(ids)²·L).
func addCompleteEdges(method string, g *core.Graph, ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(method, g, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
