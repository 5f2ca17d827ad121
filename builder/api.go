// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(capacity, gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Constructors allocate their own vertices with AddVertex, so several
//     constructors compose into one graph as disjoint components.
//   - Determinism: same capacity/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before allocating any
// vertex and return sentinel errors (no panics).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with the given capacity and graph options,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// The graph needs free slots for every vertex the constructors add; building
// into a core.WithAllLive() graph fails with core.ErrCapacityExceeded.
//
// Errors:
//   - core.ErrInvalidCapacity from graph construction.
//   - ErrConstructFailed for a nil constructor.
//   - builder sentinels and core errors from constructors (errors.Is-matchable).
func BuildGraph(capacity int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(capacity, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology factories - implemented in impl_*.go. Vertex ids below are
// positions in the constructor's own allocation order, not absolute slots.
//
//	Path(n)                  P_n: i-1 — i                          (n ≥ 2)
//	Cycle(n)                 C_n: path plus n-1 — 0                 (n ≥ 3)
//	Star(n)                  center 0, leaves 1..n-1               (n ≥ 2)
//	Wheel(n)                 hub 0, rim cycle 1..n-1               (n ≥ 4)
//	Complete(n)              K_n                                   (n ≥ 1)
//	CompleteBipartite(a, b)  K_{a,b}: left 0..a-1, right a..a+b-1  (a,b ≥ 1)
//	Grid(r, c)               r×c 4-neighbourhood, row-major        (r,c ≥ 1)
//	RandomSparse(n, p)       G(n,p), pairs i<j in ascending order  (n ≥ 1, p ∈ [0,1])
