package journal

import (
	"fmt"
	"sort"
)

// Snapshot pairs a history position with a captured state copy.
type Snapshot[S any] struct {
	Position int
	State    S

	// Pinned marks a snapshot recording a state that cannot be
	// regenerated by replay. Pinned snapshots are exempt from capacity
	// eviction.
	Pinned bool
}

// Store holds snapshots ordered by position, unique per position. The
// lowest stored position is the base; the base snapshot is never evicted,
// which guarantees NearestAtOrBefore always succeeds for any reachable
// position.
type Store[S any] struct {
	snaps    []Snapshot[S]
	capacity int
}

// NewStore creates an empty store. capacity bounds the number of retained
// snapshots; 0 means unbounded.
func NewStore[S any](capacity int) *Store[S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Store[S]{capacity: capacity}
}

// Len returns the number of retained snapshots.
func (s *Store[S]) Len() int { return len(s.snaps) }

// Base returns the lowest stored position.
func (s *Store[S]) Base() int {
	if len(s.snaps) == 0 {
		panic("journal: empty snapshot store")
	}
	return s.snaps[0].Position
}

// Has reports whether a snapshot exists exactly at pos.
func (s *Store[S]) Has(pos int) bool {
	i := s.search(pos)
	return i < len(s.snaps) && s.snaps[i].Position == pos
}

// Capture stores state at pos, replacing any existing snapshot there.
// When the capacity bound is exceeded, the oldest unpinned snapshot above
// the base is evicted.
func (s *Store[S]) Capture(pos int, state S, pinned bool) {
	i := s.search(pos)
	if i < len(s.snaps) && s.snaps[i].Position == pos {
		s.snaps[i].State = state
		if pinned {
			s.snaps[i].Pinned = true
		}
		return
	}
	s.snaps = append(s.snaps, Snapshot[S]{})
	copy(s.snaps[i+1:], s.snaps[i:])
	s.snaps[i] = Snapshot[S]{Position: pos, State: state, Pinned: pinned}
	s.evict()
}

// NearestAtOrBefore returns the snapshot with the greatest position at or
// below pos. Asking below the base is a programming error and panics.
func (s *Store[S]) NearestAtOrBefore(pos int) Snapshot[S] {
	i := s.search(pos + 1)
	if i == 0 {
		panic(fmt.Sprintf("journal: no snapshot at or before position %d", pos))
	}
	return s.snaps[i-1]
}

// TruncateAfter removes every snapshot above pos.
func (s *Store[S]) TruncateAfter(pos int) {
	s.snaps = s.snaps[:s.search(pos+1)]
}

// Rebase makes pos the new base: every snapshot below it is removed and
// a snapshot at pos is ensured, installing state when none is stored.
// The installation bypasses eviction, since a base must always exist.
func (s *Store[S]) Rebase(pos int, state S) {
	i := s.search(pos)
	s.snaps = append(s.snaps[:0], s.snaps[i:]...)
	if len(s.snaps) > 0 && s.snaps[0].Position == pos {
		return
	}
	s.snaps = append(s.snaps, Snapshot[S]{})
	copy(s.snaps[1:], s.snaps)
	s.snaps[0] = Snapshot[S]{Position: pos, State: state}
}

// search returns the first index whose position is >= pos.
func (s *Store[S]) search(pos int) int {
	return sort.Search(len(s.snaps), func(i int) bool {
		return s.snaps[i].Position >= pos
	})
}

// evict enforces the capacity bound, oldest-first, skipping the base
// snapshot and pinned snapshots. The newest snapshot is preferred over
// older ones but still falls when it is the only unpinned candidate, so
// the bound holds even at capacity 1. Pinned snapshots may hold the
// store over capacity; that is preferable to losing unreplayable
// states.
func (s *Store[S]) evict() {
	if s.capacity <= 0 {
		return
	}
	for len(s.snaps) > s.capacity {
		victim := -1
		for i := 1; i < len(s.snaps)-1; i++ {
			if !s.snaps[i].Pinned {
				victim = i
				break
			}
		}
		if victim < 0 {
			last := len(s.snaps) - 1
			if last < 1 || s.snaps[last].Pinned {
				return
			}
			victim = last
		}
		s.snaps = append(s.snaps[:victim], s.snaps[victim+1:]...)
	}
}
