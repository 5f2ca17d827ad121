// SPDX-License-Identifier: MIT

package hibitset_test

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitgraph/hibitset"
)

// TestNextSet_AgainstFlatBitset checks every NextSet answer against a flat
// bitset holding the same members, for sparse and clustered fills.
func TestNextSet_AgainstFlatBitset(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for _, capacity := range capacities {
		s := mustNew(t, capacity)
		flat := bitset.New(uint(capacity))

		// sparse singletons plus one dense run
		for i := 0; i < capacity/50+1; i++ {
			x := rng.Intn(capacity)
			s.Insert(x)
			flat.Set(uint(x))
		}
		start := rng.Intn(capacity)
		for x := start; x < capacity && x < start+130; x++ {
			s.Insert(x)
			flat.Set(uint(x))
		}
		require.Equal(t, int(flat.Count()), s.Count(), "capacity %d", capacity)

		for from := 0; from <= capacity; from++ {
			want, wantOK := flat.NextSet(uint(from))
			got, ok := s.NextSet(from)
			require.Equal(t, wantOK, ok, "capacity %d from %d", capacity, from)
			if ok {
				require.Equal(t, int(want), got, "capacity %d from %d", capacity, from)
			}
		}
		require.NoError(t, hibitset.CheckInvariant(s))
	}
}

// BenchmarkNextSet_SparseVsFlat scans a 2^20 domain holding 64 members.
// The flat bitset walks every word; the hierarchy skips empty blocks.
func BenchmarkNextSet_SparseVsFlat(b *testing.B) {
	const capacity = 1 << 20
	s, err := hibitset.New(capacity)
	if err != nil {
		b.Fatal(err)
	}
	flat := bitset.New(capacity)
	for i := 0; i < 64; i++ {
		x := i * (capacity / 64)
		s.Insert(x)
		flat.Set(uint(x))
	}

	b.Run("hibitset", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for x, ok := s.NextSet(0); ok; x, ok = s.NextSet(x + 1) {
			}
		}
	})
	b.Run("flat", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for x, ok := flat.NextSet(0); ok; x, ok = flat.NextSet(x + 1) {
			}
		}
	})
}
