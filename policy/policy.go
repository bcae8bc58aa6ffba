// Package policy provides predefined snapshot policies for rewind
// cursors.
//
// Snapshot density is the single knob trading undo/redo speed against
// memory: a policy that snapshots often keeps replay distances short at
// the cost of one full state copy per snapshot. Every policy here is a
// pure function of the position and metrics, as the engine requires.
package policy

import (
	"time"

	"github.com/dshills/rewind"
)

// Always snapshots every position. Undo and redo never replay, at the
// cost of one state copy per edit; the history degenerates to plain
// state-keeping.
func Always() rewind.PolicyFunc {
	return func(int, rewind.Metrics) bool { return true }
}

// Never snapshots nothing beyond the base. Minimal memory, maximal
// replay; every undo reconstructs from the base snapshot.
func Never() rewind.PolicyFunc {
	return func(int, rewind.Metrics) bool { return false }
}

// EveryN snapshots each position divisible by k, bounding replay to at
// most k-1 commands regardless of where the cursor lands. k < 1 is
// treated as 1.
func EveryN(k int) rewind.PolicyFunc {
	if k < 1 {
		k = 1
	}
	return func(position int, _ rewind.Metrics) bool {
		return position%k == 0
	}
}

// ByDistance snapshots once more than n commands have accumulated since
// the last snapshot.
func ByDistance(n int) rewind.PolicyFunc {
	return func(_ int, m rewind.Metrics) bool {
		return m.DistanceFromSnapshot() > n
	}
}

// ByElapsed snapshots once the summed command execution time since the
// last snapshot exceeds d, bounding the time any replay can take to
// roughly d.
func ByElapsed(d time.Duration) rewind.PolicyFunc {
	return func(_ int, m rewind.Metrics) bool {
		return m.ElapsedFromSnapshot() > d
	}
}
