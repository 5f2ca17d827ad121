// SPDX-License-Identifier: MIT
// File: algebra.go
// Role: Whole-set operations: union, reset, fill, copy, compare.
// Cost model:
//   - Operations walk only non-empty layer-0 words (found through the summary
//     layers), so work is proportional to population, not capacity.
//   - Fill and CopyFrom touch every word by nature.

package hibitset

import (
	"fmt"
	"math/bits"
)

// UnionInto adds every member of s to target (target = target ∪ s).
// s is not modified. Union with itself is a no-op.
//
// Errors: ErrCapacityMismatch if target is nil or capacities differ.
// Complexity: O(k·L), k = non-empty words of s.
func (s *Set) UnionInto(target *Set) error {
	if target == nil || target.capacity != s.capacity {
		return fmt.Errorf("%w: union into set of different capacity", ErrCapacityMismatch)
	}
	if target == s {
		return nil
	}

	src, dst := s.layers[0], target.layers[0]
	var old, merged uint64
	for w, ok := s.nextWord(0); ok; w, ok = s.nextWord(w + 1) {
		old = dst[w]
		merged = old | src[w]
		if merged == old {
			continue
		}
		dst[w] = merged
		target.count += bits.OnesCount64(merged) - bits.OnesCount64(old)
		if old == 0 {
			target.markNonEmpty(w)
		}
	}

	return nil
}

// Reset removes every member. Complexity: O(k·L), k = non-empty words.
func (s *Set) Reset() {
	for w, ok := s.nextWord(0); ok; w, ok = s.nextWord(w + 1) {
		s.layers[0][w] = 0
		s.markEmpty(w)
	}
	s.count = 0
}

// Fill makes every integer in [0, capacity) a member. Complexity: O(capacity/64).
func (s *Set) Fill() {
	n := s.capacity // valid bits on the current layer
	for _, layer := range s.layers {
		full := n >> wordShift
		for w := 0; w < full; w++ {
			layer[w] = ^uint64(0)
		}
		if rem := uint(n) & wordMask; rem != 0 {
			layer[full] = 1<<rem - 1
		}
		n = len(layer)
	}
	s.count = s.capacity
}

// CopyFrom overwrites s with the members of src.
//
// Errors: ErrCapacityMismatch if capacities differ.
func (s *Set) CopyFrom(src *Set) error {
	if src == nil || src.capacity != s.capacity {
		return fmt.Errorf("%w: copy from set of different capacity", ErrCapacityMismatch)
	}
	for l := range s.layers {
		copy(s.layers[l], src.layers[l])
	}
	s.count = src.count

	return nil
}

// Clone returns an independent copy of s with its own storage.
func (s *Set) Clone() *Set {
	c, _ := New(s.capacity) // s.capacity was validated when s was built
	_ = c.CopyFrom(s)

	return c
}

// Equal reports whether s and o have the same capacity and members.
func (s *Set) Equal(o *Set) bool {
	if o == nil || s.capacity != o.capacity || s.count != o.count {
		return false
	}
	// Equal counts: every non-empty word of s matching o implies o has nothing else.
	for w, ok := s.nextWord(0); ok; w, ok = s.nextWord(w + 1) {
		if s.layers[0][w] != o.layers[0][w] {
			return false
		}
	}

	return true
}
