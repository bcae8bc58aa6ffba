package rewind

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/rewind/internal/journal"
)

// entry records one applied command and its cost. cmd is nil for
// positions produced by TryEdit; those positions always carry a pinned
// snapshot and replay never crosses them.
type entry[S any] struct {
	cmd     Command[S]
	desc    string
	elapsed time.Duration
	at      time.Time
}

// Cursor is the user-facing handle for a regenerable history. It owns the
// live state, the command log, and the snapshot store.
//
// A Cursor is not safe for concurrent use; see the package documentation.
type Cursor[S any] struct {
	state    S
	position int
	horizon  int

	log     *journal.Log[entry[S]]
	snaps   *journal.Store[S]
	policy  Policy
	clone   func(S) S
	logCap  int
	snapCap int

	// metrics accumulates the replay cost at the current position
	// relative to the nearest snapshot at or before it. metricsOK is
	// cleared whenever navigation, rebasing, or eviction may have moved
	// that snapshot; the next edit then rebuilds from the journal.
	metrics   Metrics
	metricsOK bool

	marks map[uuid.UUID]int
}

// Current returns the live state. The caller must treat it as read-only;
// mutating it bypasses the history.
func (c *Cursor[S]) Current() S { return c.state }

// Position returns the position whose state is currently materialized.
func (c *Cursor[S]) Position() int { return c.position }

// Horizon returns the furthest position ever reached; the upper bound for
// redo.
func (c *Cursor[S]) Horizon() int { return c.horizon }

// OldestPosition returns the oldest position undo can reach. It is 0
// until a log capacity bound drops old entries.
func (c *Cursor[S]) OldestPosition() int { return c.log.Base() }

// UndoableCount returns the number of positions older than the current
// one that remain reachable.
func (c *Cursor[S]) UndoableCount() int { return c.position - c.log.Base() }

// RedoableCount returns the number of positions newer than the current
// one that remain reachable.
func (c *Cursor[S]) RedoableCount() int { return c.horizon - c.position }

// CanUndo reports whether Undo would move the cursor.
func (c *Cursor[S]) CanUndo() bool { return c.UndoableCount() > 0 }

// CanRedo reports whether Redo would move the cursor.
func (c *Cursor[S]) CanRedo() bool { return c.RedoableCount() > 0 }

// Edit applies cmd to the live state and records it. Editing below the
// horizon first discards the redo range; that discard is irreversible.
func (c *Cursor[S]) Edit(cmd Command[S]) S {
	start := time.Now()
	next := cmd.Apply(c.state)
	c.record(cmd, next, time.Since(start))
	return c.state
}

// EditFunc is Edit for a bare function.
func (c *Cursor[S]) EditFunc(f func(S) S) S {
	return c.Edit(CommandFunc[S](f))
}

// EditIf applies f and records the result only when f accepts. When f
// declines, the previous state is regenerated by replay, since f consumed
// the live value and may have mutated it. Like Edit, f must be
// deterministic: it is re-run during replay and must accept again.
func (c *Cursor[S]) EditIf(f func(S) (S, bool)) (S, bool) {
	start := time.Now()
	next, ok := f(c.state)
	if !ok {
		c.state = c.reconstruct(c.position)
		return c.state, false
	}
	c.record(conditionalCommand[S]{f: f}, next, time.Since(start))
	return c.state, true
}

// TryEdit applies a fallible, non-reproducible command (I/O, randomness).
// On success the new position is pinned with a snapshot and the command
// is never re-applied; on error the previous state is regenerated by
// replay and the history is unchanged.
func (c *Cursor[S]) TryEdit(f func(S) (S, error)) (S, error) {
	next, err := f(c.state)
	if err != nil {
		c.state = c.reconstruct(c.position)
		return c.state, err
	}
	c.truncateRedo()
	c.log.Append(entry[S]{at: time.Now()})
	c.position++
	c.horizon = c.position
	c.state = next
	c.snaps.Capture(c.position, c.clone(next), true)
	c.metrics = Metrics{}
	c.metricsOK = true
	c.enforceLogCap()
	return c.state, nil
}

// Undo steps back one position. At the oldest reachable position it is a
// successful no-op and reports false.
func (c *Cursor[S]) Undo() (S, bool) {
	if !c.CanUndo() {
		return c.state, false
	}
	st, _ := c.UndoTo(c.position - 1)
	return st, true
}

// Redo steps forward one position. At the horizon it is a successful
// no-op and reports false.
func (c *Cursor[S]) Redo() (S, bool) {
	if !c.CanRedo() {
		return c.state, false
	}
	st, _ := c.RedoTo(c.position + 1)
	return st, true
}

// UndoTo moves the cursor back to target by restoring the nearest
// snapshot at or before it and replaying the commands in between. The
// horizon is unchanged, so the undone range stays redoable. Targets
// outside [OldestPosition, Position] yield ErrInvalidPosition.
func (c *Cursor[S]) UndoTo(target int) (S, error) {
	if target > c.position || target < c.log.Base() {
		return c.state, ErrInvalidPosition
	}
	if target == c.position {
		return c.state, nil
	}
	c.state = c.reconstruct(target)
	c.position = target
	c.metricsOK = false
	return c.state, nil
}

// RedoTo moves the cursor forward to target. Replay starts from whichever
// is closer to the target: a snapshot at or ahead of the cursor, or the
// live state itself. Targets outside [Position, Horizon] yield
// ErrInvalidPosition.
func (c *Cursor[S]) RedoTo(target int) (S, error) {
	if target < c.position || target > c.horizon {
		return c.state, ErrInvalidPosition
	}
	if target == c.position {
		return c.state, nil
	}
	if s := c.snaps.NearestAtOrBefore(target); s.Position >= c.position {
		c.state = c.replay(c.clone(s.State), s.Position, target)
	} else {
		c.state = c.replay(c.state, c.position, target)
	}
	c.position = target
	c.metricsOK = false
	return c.state, nil
}

// UndoMulti undoes n steps at once, replaying from the nearest snapshot
// once instead of n times. It reports false and leaves the cursor in
// place when fewer than n steps are undoable.
func (c *Cursor[S]) UndoMulti(n int) (S, bool) {
	if n < 0 {
		return c.state, false
	}
	st, err := c.UndoTo(c.position - n)
	return st, err == nil
}

// RedoMulti redoes n steps at once. It reports false and leaves the
// cursor in place when fewer than n steps are redoable.
func (c *Cursor[S]) RedoMulti(n int) (S, bool) {
	if n < 0 {
		return c.state, false
	}
	st, err := c.RedoTo(c.position + n)
	return st, err == nil
}

// Jump moves delta positions: backward when negative, forward when
// positive.
func (c *Cursor[S]) Jump(delta int) (S, bool) {
	if delta < 0 {
		return c.UndoMulti(-delta)
	}
	return c.RedoMulti(delta)
}

// Clear discards all history. The live state becomes the new base
// snapshot at position 0.
func (c *Cursor[S]) Clear() {
	c.log = journal.NewLog[entry[S]]()
	c.snaps = journal.NewStore[S](c.snapCap)
	c.snaps.Capture(0, c.clone(c.state), false)
	c.position = 0
	c.horizon = 0
	c.metrics = Metrics{}
	c.metricsOK = true
	c.marks = nil
}

// EntryInfo describes one retained history entry.
type EntryInfo struct {
	Position    int
	Description string
	Timestamp   time.Time
	Elapsed     time.Duration
	Snapshotted bool
	Replayable  bool
}

// History lists every retained entry, oldest first, covering positions
// (OldestPosition, Horizon].
func (c *Cursor[S]) History() []EntryInfo {
	base := c.log.Base()
	infos := make([]EntryInfo, 0, c.horizon-base)
	for pos := base + 1; pos <= c.horizon; pos++ {
		e := c.log.Entry(pos)
		infos = append(infos, EntryInfo{
			Position:    pos,
			Description: e.desc,
			Timestamp:   e.at,
			Elapsed:     e.elapsed,
			Snapshotted: c.snaps.Has(pos),
			Replayable:  e.cmd != nil,
		})
	}
	return infos
}

// SnapshotCount returns the number of retained snapshots, the base
// included.
func (c *Cursor[S]) SnapshotCount() int { return c.snaps.Len() }

// record appends an applied command, advances the cursor, and lets the
// policy decide on a snapshot.
func (c *Cursor[S]) record(cmd Command[S], next S, elapsed time.Duration) {
	c.truncateRedo()
	c.log.Append(entry[S]{cmd: cmd, desc: describe(cmd), elapsed: elapsed, at: time.Now()})
	c.position++
	c.horizon = c.position
	c.state = next
	m := c.metrics.next(elapsed)
	if !c.metricsOK {
		m = c.metricsAt(c.position)
	}
	c.metricsOK = true
	if c.policy.ShouldSnapshot(c.position, m) {
		c.snaps.Capture(c.position, c.clone(next), false)
		if c.snaps.Has(c.position) {
			m = Metrics{}
		} else {
			// Capacity eviction took the capture straight back out.
			c.metricsOK = false
		}
	}
	c.metrics = m
	c.enforceLogCap()
}

// truncateRedo discards the redo range ahead of the cursor before a new
// edit lands.
func (c *Cursor[S]) truncateRedo() {
	if c.position == c.horizon {
		return
	}
	c.log.TruncateAfter(c.position)
	c.snaps.TruncateAfter(c.position)
	c.horizon = c.position
	for id, pos := range c.marks {
		if pos > c.position {
			delete(c.marks, id)
		}
	}
}

// metricsAt rebuilds the cost metrics for pos relative to the nearest
// snapshot strictly before it: the slow path when navigation, rebasing,
// or eviction invalidated the running accumulator.
func (c *Cursor[S]) metricsAt(pos int) Metrics {
	s := c.snaps.NearestAtOrBefore(pos - 1)
	var m Metrics
	for _, e := range c.log.Span(s.Position, pos) {
		m = m.next(e.elapsed)
	}
	return m
}

// reconstruct materializes the state at target: restore the nearest
// snapshot at or before it, replay the commands in between.
func (c *Cursor[S]) reconstruct(target int) S {
	s := c.snaps.NearestAtOrBefore(target)
	return c.replay(c.clone(s.State), s.Position, target)
}

// replay folds the commands covering positions (from, through] into
// state. Crossing a position with no stored command means a pinned
// snapshot was lost, which the eviction rules make impossible.
func (c *Cursor[S]) replay(state S, from, through int) S {
	for _, e := range c.log.Span(from, through) {
		if e.cmd == nil {
			panic("rewind: replay crossed a non-reproducible edit")
		}
		state = e.cmd.Apply(state)
	}
	return state
}

// enforceLogCap rebases the history until the command log fits its bound.
func (c *Cursor[S]) enforceLogCap() {
	if c.logCap <= 0 {
		return
	}
	for c.log.Len() > c.logCap {
		c.rebase()
	}
}

// rebase folds the oldest command into the base snapshot, giving up one
// position of undo reach. The state one past the old base is materialized
// first (replayed from the base snapshot unless already captured), then
// becomes the new base.
func (c *Cursor[S]) rebase() {
	base := c.log.Base()
	next := base + 1

	var state S
	if !c.snaps.Has(next) {
		s := c.snaps.NearestAtOrBefore(base)
		state = c.replay(c.clone(s.State), base, next)
	}
	c.log.DropOldest()
	c.snaps.Rebase(next, state)
	c.metricsOK = false
	for id, pos := range c.marks {
		if pos < next {
			delete(c.marks, id)
		}
	}
}
