package rewind

import "errors"

// Common errors for cursor navigation.
var (
	// ErrInvalidPosition reports an UndoTo/RedoTo target outside the
	// navigable range.
	ErrInvalidPosition = errors.New("rewind: position outside history")

	// ErrCheckpointInvalid reports a checkpoint whose position was
	// discarded by a truncating edit or a capacity bound.
	ErrCheckpointInvalid = errors.New("rewind: checkpoint no longer in history")
)
