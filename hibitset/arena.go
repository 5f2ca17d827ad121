// SPDX-License-Identifier: MIT

package hibitset

import "fmt"

// NewArena returns n empty sets of the given capacity whose words are carved
// from one contiguous allocation. Sets are addressed by index; callers keep
// pointers such as &sets[i] and never copy the elements.
//
// Errors: ErrInvalidCapacity if capacity is invalid, n < 0, or the slab
// would exceed MaxArenaWords.
// Complexity: one allocation of n·Σ(layer words) words.
func NewArena(capacity, n int) ([]Set, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative arena size %d", ErrInvalidCapacity, n)
	}

	total, ok := ArenaWords(capacity, n)
	if !ok {
		return nil, fmt.Errorf("%w: %d sets of capacity %d exceed %d words",
			ErrInvalidCapacity, n, capacity, MaxArenaWords)
	}

	sizes := layerSizes(capacity)
	per := setWords(capacity)
	slab := make([]uint64, total)
	sets := make([]Set, n)
	for i := range sets {
		sets[i].bind(capacity, sizes, slab[i*per:(i+1)*per:(i+1)*per])
	}

	return sets, nil
}
