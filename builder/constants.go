// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// constants.go - method tags and parameter minima shared by all constructors.

package builder

// Builder method name constants, used to prefix errors with the constructor name.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
)

// MinCycleNodes is the smallest simple cycle (fewer nodes would need loops or multi-edges).
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle rim plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes admits K_1 (a single isolated vertex).
const MinCompleteNodes = 1

// MinGridDim is the smallest grid dimension; a 1×1 grid has no edges but is valid.
const MinGridDim = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
