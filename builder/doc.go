// SPDX-License-Identifier: MIT
// Package builder provides deterministic topology constructors for
// core.Graph: paths, cycles, stars, wheels, complete and complete-bipartite
// graphs, grids and Erdős–Rényi random graphs.
//
// Constructors are composed by BuildGraph on a single fixed-capacity graph:
//
//	g, err := builder.BuildGraph(64, nil, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.Cycle(5),            // slots 0..4
//		builder.RandomSparse(20, .1) // slots 5..24
//	)
//
// Each constructor allocates its own vertices through core.Graph.AddVertex,
// so constructors never collide and the resulting components are disjoint.
//
// Guarantees:
//
//   - Parameters are validated before any vertex is allocated.
//   - Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) or wrapped core errors.
//   - Option constructors (WithRand(nil)) panic on programmer error;
//     build-time code never panics.
//   - Same capacity, options, seed and constructor order ⇒ identical graph.
package builder
