// SPDX-License-Identifier: MIT
// File: hibitset.go
// Role: Set type, construction, membership mutation and next-set-bit queries.
// Invariant:
//   - For every layer l ≥ 1, bit b of layer l is set iff word b of layer l-1 is non-zero.
//   - count equals the population of layer 0.
//   - Bits at or beyond capacity are never set on any layer.

package hibitset

import (
	"fmt"
	"iter"
	"math/bits"
)

// Set is a hierarchical bit index over [0, capacity).
//
// The zero value is not usable; build sets with New or NewArena.
// A Set must not be copied after first use: copies share word storage.
type Set struct {
	capacity int
	count    int

	// layers[0] holds one bit per member; layers[len-1] is a single summary word.
	layers [][]uint64
}

// New returns an empty Set able to hold integers in [0, capacity).
//
// Errors: ErrInvalidCapacity if capacity ≤ 0 or capacity > MaxCapacity.
// Complexity: O(capacity/64) words allocated once.
func New(capacity int) (*Set, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	s := &Set{}
	s.bind(capacity, layerSizes(capacity), make([]uint64, setWords(capacity)))

	return s, nil
}

// bind carves the layers of s out of slab, which must hold exactly sum(sizes) words.
func (s *Set) bind(capacity int, sizes []int, slab []uint64) {
	s.capacity = capacity
	s.count = 0
	s.layers = make([][]uint64, len(sizes))
	off := 0
	for l, n := range sizes {
		s.layers[l] = slab[off : off+n : off+n]
		off += n
	}
}

// Capacity returns the size of the universe [0, capacity).
func (s *Set) Capacity() int { return s.capacity }

// Layers returns the height of the hierarchy.
func (s *Set) Layers() int { return len(s.layers) }

// Count returns the number of members. O(1).
func (s *Set) Count() int { return s.count }

// IsEmpty reports whether the set has no members. O(1): tests the top summary word.
func (s *Set) IsEmpty() bool { return s.layers[len(s.layers)-1][0] == 0 }

// Set marks i present. Idempotent.
//
// Errors: ErrOutOfRange if i ∉ [0, capacity).
func (s *Set) Set(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.Insert(i)

	return nil
}

// Clear marks i absent. Idempotent.
//
// Errors: ErrOutOfRange if i ∉ [0, capacity).
func (s *Set) Clear(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.Delete(i)

	return nil
}

// Test reports whether i is present.
//
// Errors: ErrOutOfRange if i ∉ [0, capacity).
func (s *Set) Test(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}

	return s.Has(i), nil
}

// Has reports whether i is present; out-of-range indices are simply absent.
func (s *Set) Has(i int) bool {
	if uint(i) >= uint(s.capacity) {
		return false
	}

	return s.layers[0][i>>wordShift]&(1<<(uint(i)&wordMask)) != 0
}

// Insert adds i and reports whether it was newly added.
// The caller guarantees i ∈ [0, capacity); use Set for checked access.
func (s *Set) Insert(i int) bool {
	w := i >> wordShift
	bit := uint64(1) << (uint(i) & wordMask)
	word := s.layers[0][w]
	if word&bit != 0 {
		return false
	}
	s.layers[0][w] = word | bit
	s.count++
	if word == 0 {
		s.markNonEmpty(w)
	}

	return true
}

// Delete removes i and reports whether it was present.
// The caller guarantees i ∈ [0, capacity); use Clear for checked access.
func (s *Set) Delete(i int) bool {
	w := i >> wordShift
	bit := uint64(1) << (uint(i) & wordMask)
	word := s.layers[0][w]
	if word&bit == 0 {
		return false
	}
	word &^= bit
	s.layers[0][w] = word
	s.count--
	if word == 0 {
		s.markEmpty(w)
	}

	return true
}

// markNonEmpty sets the summary bits above layer-0 word w, which just became non-zero.
// Propagation stops at the first layer whose word was already non-zero.
func (s *Set) markNonEmpty(w int) {
	var p int
	var word uint64
	for l := 1; l < len(s.layers); l++ {
		p = w >> wordShift
		word = s.layers[l][p]
		s.layers[l][p] = word | 1<<(uint(w)&wordMask)
		if word != 0 {
			return
		}
		w = p
	}
}

// markEmpty clears the summary bits above layer-0 word w, which just became zero.
// A summary bit is cleared only when its whole block below is empty.
func (s *Set) markEmpty(w int) {
	var p int
	for l := 1; l < len(s.layers); l++ {
		p = w >> wordShift
		s.layers[l][p] &^= 1 << (uint(w) & wordMask)
		if s.layers[l][p] != 0 {
			return
		}
		w = p
	}
}

// NextSet returns the smallest member ≥ from, or (-1, false) if none exists.
// Negative from is treated as 0.
//
// The search climbs while the current block has nothing at or after the
// projected position, then descends along the lowest set summary bits.
// Complexity: O(L).
func (s *Set) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= s.capacity {
		return -1, false
	}

	top := len(s.layers) - 1
	pos, l := from, 0
	for {
		w := pos >> wordShift
		if word := s.layers[l][w] >> (uint(pos) & wordMask); word != 0 {
			pos += bits.TrailingZeros64(word)
			break
		}
		if l == top {
			return -1, false
		}
		// Continue with the block after w, one layer up.
		pos = w + 1
		l++
		if pos>>wordShift >= len(s.layers[l]) {
			return -1, false
		}
	}
	for ; l > 0; l-- {
		pos = pos<<wordShift | bits.TrailingZeros64(s.layers[l-1][pos])
	}

	return pos, true
}

// nextWord returns the index of the first non-zero layer-0 word at or after w.
func (s *Set) nextWord(w int) (int, bool) {
	if w >= len(s.layers[0]) {
		return -1, false
	}
	i, ok := s.NextSet(w << wordShift)
	if !ok {
		return -1, false
	}

	return i >> wordShift, true
}

// All returns an ascending iterator over the members.
// Mutating s while iterating yields unspecified, memory-safe results.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// AppendTo appends the members in ascending order to dst and returns the result.
func (s *Set) AppendTo(dst []int) []int {
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		dst = append(dst, i)
	}

	return dst
}

func (s *Set) check(i int) error {
	if uint(i) >= uint(s.capacity) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, s.capacity)
	}

	return nil
}
