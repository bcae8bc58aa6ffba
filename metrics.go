package rewind

import "time"

// Metrics describes the cost of reaching a position from the nearest
// earlier snapshot. The snapshot policy receives one Metrics value per
// applied command and uses it to decide whether to capture.
type Metrics struct {
	elapsed             time.Duration
	elapsedFromSnapshot time.Duration
	distance            int
}

// Elapsed is the execution time of the command that produced this
// position.
func (m Metrics) Elapsed() time.Duration { return m.elapsed }

// ElapsedFromSnapshot is the summed execution time of every command since
// the nearest earlier snapshot: an upper bound on the replay time an undo
// landing here would pay.
func (m Metrics) ElapsedFromSnapshot() time.Duration { return m.elapsedFromSnapshot }

// DistanceFromSnapshot is the number of commands since the nearest
// earlier snapshot.
func (m Metrics) DistanceFromSnapshot() int { return m.distance }

// next folds one more command into the accumulation.
func (m Metrics) next(elapsed time.Duration) Metrics {
	return Metrics{
		elapsed:             elapsed,
		elapsedFromSnapshot: m.elapsedFromSnapshot + elapsed,
		distance:            m.distance + 1,
	}
}
