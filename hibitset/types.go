// SPDX-License-Identifier: MIT

package hibitset

import (
	"errors"
	"fmt"
)

// Word geometry. Every layer fans out by wordBits.
const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

const (
	// MaxLayers bounds the height of the hierarchy.
	MaxLayers = 5

	// MaxCapacity is the largest universe a Set can index: 64^MaxLayers.
	MaxCapacity = 1 << (wordShift * MaxLayers)

	// MaxArenaWords bounds the slab a single NewArena call may allocate
	// (2^27 words, 1 GiB).
	MaxArenaWords = 1 << 27
)

var (
	// ErrOutOfRange indicates an index outside [0, capacity).
	ErrOutOfRange = errors.New("hibitset: index out of range")

	// ErrInvalidCapacity indicates a capacity ≤ 0 or above MaxCapacity.
	ErrInvalidCapacity = errors.New("hibitset: invalid capacity")

	// ErrCapacityMismatch indicates an operation between sets of different capacity.
	ErrCapacityMismatch = errors.New("hibitset: capacity mismatch")
)

// layerSizes returns the word count of every layer for the given capacity,
// bottom layer first. The last entry is always 1.
func layerSizes(capacity int) []int {
	sizes := make([]int, 0, MaxLayers)
	n := (capacity + wordMask) >> wordShift
	for {
		sizes = append(sizes, n)
		if n == 1 {
			return sizes
		}
		n = (n + wordMask) >> wordShift
	}
}

// setWords returns the total word count of one Set of the given capacity.
func setWords(capacity int) int {
	total := 0
	for _, n := range layerSizes(capacity) {
		total += n
	}

	return total
}

// ArenaWords returns the slab size NewArena(capacity, n) would allocate and
// whether it fits MaxArenaWords. capacity must be valid and n ≥ 0.
func ArenaWords(capacity, n int) (int, bool) {
	per := setWords(capacity)
	if n > 0 && per > MaxArenaWords/n {
		return 0, false
	}

	return per * n, true
}

func validateCapacity(capacity int) error {
	if capacity <= 0 || capacity > MaxCapacity {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidCapacity, capacity, MaxCapacity)
	}

	return nil
}
