// SPDX-License-Identifier: MIT
// Package hibitset implements a hierarchical bit index: a fixed-capacity set
// of integers in [0, capacity) stored as a stack of 64-bit word bitmaps.
//
// Layout:
//
//	layer L-1   [x.......]                 one word: "which blocks below are non-empty"
//	   ...
//	layer 1     [x..x....][........] ...   bit b set ⇔ layer-0 word b is non-zero
//	layer 0     [01001...][00000000] ...   one bit per member
//
// Layer 0 holds one bit per integer. Every higher layer holds one bit per
// word of the layer below, set iff that word is non-zero. The summary
// invariant is maintained by every mutation, which lets NextSet skip
// 64^l absent integers with a single word test at layer l.
//
// Complexity (L = Layers(), at most MaxLayers):
//
//   - Set / Clear / Insert / Delete: O(L) worst case, O(1) typical.
//   - Test / Has / Count / IsEmpty:  O(1).
//   - NextSet:                       O(L).
//   - UnionInto / Reset / All:       O(k·L) where k is the number of non-empty words.
//
// Errors:
//
//	ErrInvalidCapacity  - capacity ≤ 0 or > MaxCapacity, or an arena above MaxArenaWords.
//	ErrOutOfRange       - index outside [0, capacity).
//	ErrCapacityMismatch - set algebra between sets of different capacity.
//
// A Set is a single-owner value: it has no internal locking, and concurrent
// mutation must be serialized by the caller.
package hibitset
