// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Allocates rows·cols vertices row-major: cell (r,c) is the (r·cols+c)-th.
//   - For each cell in row-major order emits the right edge, then the down edge.

package builder

import "github.com/katalvlaran/bitgraph/core"

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		ids, err := addVertices(MethodGrid, g, rows*cols)
		if err != nil {
			return err
		}
		var cell int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell = r*cols + c
				if c+1 < cols {
					if err = addEdge(MethodGrid, g, ids[cell], ids[cell+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(MethodGrid, g, ids[cell], ids[cell+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
