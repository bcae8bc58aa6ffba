package rewind

import "github.com/dshills/rewind/internal/journal"

// Cloneable constrains state types that can duplicate themselves for
// snapshot capture. Clone must return an independent copy: later mutation
// of the original must not be observable through the copy.
type Cloneable[S any] interface {
	Clone() S
}

// Builder assembles a Cursor from an initial state and configuration.
type Builder[S any] struct {
	clone   func(S) S
	policy  Policy
	snapCap int
	logCap  int
}

// New returns a builder for states that implement Clone.
func New[S Cloneable[S]]() *Builder[S] {
	return NewFunc[S](func(s S) S { return s.Clone() })
}

// NewFunc returns a builder that uses clone to duplicate states for
// snapshot capture. Use it when Clone cannot be a method on S, or when a
// cheaper snapshot representation than a full copy exists.
func NewFunc[S any](clone func(S) S) *Builder[S] {
	if clone == nil {
		panic("rewind: nil clone function")
	}
	return &Builder[S]{
		clone:  clone,
		policy: PolicyFunc(func(int, Metrics) bool { return false }),
	}
}

// WithPolicy sets the snapshot policy. The default never snapshots beyond
// the base: maximal replay cost, minimal memory.
func (b *Builder[S]) WithPolicy(p Policy) *Builder[S] {
	if p != nil {
		b.policy = p
	}
	return b
}

// WithSnapshotCapacity bounds the number of retained snapshots; 0 means
// unbounded. The base snapshot and pinned snapshots are never evicted.
func (b *Builder[S]) WithSnapshotCapacity(n int) *Builder[S] {
	if n < 0 {
		n = 0
	}
	b.snapCap = n
	return b
}

// WithLogCapacity bounds the number of retained commands; 0 means
// unbounded. When the bound is exceeded the oldest command is folded into
// the base snapshot, so only undo reach is lost, never redo.
func (b *Builder[S]) WithLogCapacity(n int) *Builder[S] {
	if n < 0 {
		n = 0
	}
	b.logCap = n
	return b
}

// Build materializes a Cursor owning initial. A base snapshot of initial
// is captured at position 0; position and horizon start there.
func (b *Builder[S]) Build(initial S) *Cursor[S] {
	snaps := journal.NewStore[S](b.snapCap)
	snaps.Capture(0, b.clone(initial), false)
	return &Cursor[S]{
		state:     initial,
		log:       journal.NewLog[entry[S]](),
		snaps:     snaps,
		policy:    b.policy,
		clone:     b.clone,
		logCap:    b.logCap,
		snapCap:   b.snapCap,
		metricsOK: true,
	}
}
