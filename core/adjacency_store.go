// SPDX-License-Identifier: MIT
// File: adjacency_store.go
// Role: Storage layer under Graph: one neighbour set per vertex slot plus the
//       live/free slot bookkeeping.
// Invariants (maintained by Graph, relied upon here):
//   - live and free are complements over [0, capacity).
//   - adj[v] is empty for every non-live v.
//   - v ∈ adj[u] ⇔ u ∈ adj[v]; v ∉ adj[v].
// Storage:
//   - adj is an arena: every slot's layers live in one contiguous word slab.
//   - Slots are addressed by index only; no set holds a reference to another.

package core

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/hibitset"
)

type adjacencyStore struct {
	capacity int
	adj      []hibitset.Set // adj[v] is the neighbour set of slot v
	live     *hibitset.Set  // slots currently holding a vertex
	free     *hibitset.Set  // complement of live; NextSet(0) is the smallest free slot
}

func newAdjacencyStore(capacity int, allLive bool) (*adjacencyStore, error) {
	adj, err := hibitset.NewArena(capacity, capacity)
	if err != nil {
		return nil, fmt.Errorf("core: NewGraph(%d): %w", capacity, err)
	}
	live, _ := hibitset.New(capacity) // capacity already validated by NewArena
	free, _ := hibitset.New(capacity)
	if allLive {
		live.Fill()
	} else {
		free.Fill()
	}

	return &adjacencyStore{capacity: capacity, adj: adj, live: live, free: free}, nil
}

func (s *adjacencyStore) neighbours(v int) *hibitset.Set { return &s.adj[v] }

func (s *adjacencyStore) inRange(v int) bool { return uint(v) < uint(s.capacity) }

// activate marks slot v live. Its neighbour set is already empty.
func (s *adjacencyStore) activate(v int) {
	s.live.Insert(v)
	s.free.Delete(v)
}

// retire empties slot v's neighbour set and returns the slot to the free set.
// Callers must have already unlinked v from every neighbour.
func (s *adjacencyStore) retire(v int) {
	s.adj[v].Reset()
	s.live.Delete(v)
	s.free.Insert(v)
}

// link sets the symmetric pair of bits for edge {u,v}; reports whether the edge is new.
func (s *adjacencyStore) link(u, v int) bool {
	if !s.adj[u].Insert(v) {
		return false
	}
	s.adj[v].Insert(u)

	return true
}

// unlink clears the symmetric pair of bits for edge {u,v}; reports whether it existed.
func (s *adjacencyStore) unlink(u, v int) bool {
	if !s.adj[u].Delete(v) {
		return false
	}
	s.adj[v].Delete(u)

	return true
}

// merge ORs slot src's neighbour set into slot dst's.
// All slots share one capacity, so a mismatch means the arena is corrupt.
func (s *adjacencyStore) merge(dst, src int) {
	if err := s.adj[src].UnionInto(&s.adj[dst]); err != nil {
		panic(fmt.Sprintf("core: adjacency arena corrupted: %v", err))
	}
}
