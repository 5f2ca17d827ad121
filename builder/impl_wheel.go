// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - First allocated vertex is the hub; the other n-1 form the rim cycle.
//   - Emits rim edges first (cycle order), then spokes hub→rim in rim order.

package builder

import "github.com/katalvlaran/bitgraph/core"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodWheel, g, n)
		if err != nil {
			return err
		}
		hub, rim := ids[0], ids[1:]
		for i := range rim {
			if err = addEdge(MethodWheel, g, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, r := range rim {
			if err = addEdge(MethodWheel, g, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
