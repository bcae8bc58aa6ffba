package rewind

import "github.com/google/uuid"

// Checkpoint marks a position in the history that the cursor can return
// to later. A checkpoint survives undo and redo, but is invalidated when
// its position is discarded: by an edit that truncates the timeline below
// it, or by a log capacity bound dropping it from the undo range.
type Checkpoint struct {
	id       uuid.UUID
	position int
}

// Position returns the history position the checkpoint marks.
func (cp Checkpoint) Position() int { return cp.position }

// ID returns the checkpoint's unique identity.
func (cp Checkpoint) ID() uuid.UUID { return cp.id }

// Checkpoint marks the current position.
func (c *Cursor[S]) Checkpoint() Checkpoint {
	cp := Checkpoint{id: uuid.New(), position: c.position}
	if c.marks == nil {
		c.marks = make(map[uuid.UUID]int)
	}
	c.marks[cp.id] = cp.position
	return cp
}

// RevertTo returns to a previously created checkpoint, undoing or redoing
// as needed.
func (c *Cursor[S]) RevertTo(cp Checkpoint) (S, error) {
	pos, ok := c.marks[cp.id]
	if !ok || pos != cp.position {
		return c.state, ErrCheckpointInvalid
	}
	if pos < c.position {
		return c.UndoTo(pos)
	}
	return c.RedoTo(pos)
}

// ReleaseCheckpoint forgets a checkpoint without moving the cursor.
func (c *Cursor[S]) ReleaseCheckpoint(cp Checkpoint) {
	delete(c.marks, cp.id)
}
