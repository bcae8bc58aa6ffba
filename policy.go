package rewind

// Policy decides, after each applied command, whether the cursor should
// capture a snapshot at the new position.
//
// A policy must be a pure function of the position and metrics. Depending
// on wall-clock time or global state would make snapshot placement, and
// therefore reconstruction cost, nondeterministic and untestable.
type Policy interface {
	ShouldSnapshot(position int, m Metrics) bool
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(position int, m Metrics) bool

// ShouldSnapshot calls f.
func (f PolicyFunc) ShouldSnapshot(position int, m Metrics) bool { return f(position, m) }
