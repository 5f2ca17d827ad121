// SPDX-License-Identifier: MIT

package hibitset

import (
	"fmt"
	"math/bits"
)

// CheckInvariant recomputes every summary layer and the cached count and
// reports the first disagreement. Test-only export.
func CheckInvariant(s *Set) error {
	pop := 0
	for _, w := range s.layers[0] {
		pop += bits.OnesCount64(w)
	}
	if pop != s.count {
		return fmt.Errorf("count %d, population %d", s.count, pop)
	}
	for l := 1; l < len(s.layers); l++ {
		for p := range s.layers[l] {
			var want uint64
			for b := 0; b < wordBits; b++ {
				w := p<<wordShift | b
				if w < len(s.layers[l-1]) && s.layers[l-1][w] != 0 {
					want |= 1 << uint(b)
				}
			}
			if s.layers[l][p] != want {
				return fmt.Errorf("layer %d word %d: have %#x want %#x", l, p, s.layers[l][p], want)
			}
		}
	}
	if tail := uint(s.capacity) & wordMask; tail != 0 {
		last := s.layers[0][len(s.layers[0])-1]
		if last>>tail != 0 {
			return fmt.Errorf("bits set beyond capacity %d", s.capacity)
		}
	}

	return nil
}
