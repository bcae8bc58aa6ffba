// Package journal provides the positional storage underneath a history
// cursor: an append-only command log and a sparse snapshot store, both
// addressed by absolute history positions.
package journal

import "fmt"

// Log is an ordered, positionally addressed journal of entries.
//
// Positions are absolute: the entry at index i corresponds to position
// Base+i+1, so the log covers positions Base+1 through End. Position Base
// itself carries no entry; it is the point the history is anchored at.
// The base starts at 0 and rises when a capacity bound drops the oldest
// entries.
type Log[E any] struct {
	base    int
	entries []E
}

// NewLog creates an empty log anchored at position 0.
func NewLog[E any]() *Log[E] {
	return &Log[E]{}
}

// Base returns the position the log is anchored at. No entry exists at or
// below Base.
func (l *Log[E]) Base() int { return l.base }

// End returns the highest position with a retained entry. End equals Base
// when the log is empty.
func (l *Log[E]) End() int { return l.base + len(l.entries) }

// Len returns the number of retained entries.
func (l *Log[E]) Len() int { return len(l.entries) }

// Append stores e at position End+1.
func (l *Log[E]) Append(e E) {
	l.entries = append(l.entries, e)
}

// Entry returns the entry at an absolute position. Out-of-range access is
// a programming error and panics.
func (l *Log[E]) Entry(pos int) E {
	l.check(pos)
	return l.entries[pos-l.base-1]
}

// Span returns the entries covering positions (after, through], in order.
// The returned slice aliases the log's storage and must not be retained
// across mutations.
func (l *Log[E]) Span(after, through int) []E {
	if after == through {
		return nil
	}
	l.check(after + 1)
	l.check(through)
	return l.entries[after-l.base : through-l.base]
}

// TruncateAfter discards every entry above pos.
func (l *Log[E]) TruncateAfter(pos int) {
	if pos >= l.End() {
		return
	}
	if pos < l.base {
		panic(fmt.Sprintf("journal: truncate to %d below base %d", pos, l.base))
	}
	l.entries = l.entries[:pos-l.base]
}

// DropOldest removes the entry at Base+1 and advances the base by one.
func (l *Log[E]) DropOldest() {
	if len(l.entries) == 0 {
		panic("journal: drop on empty log")
	}
	l.entries = l.entries[1:]
	l.base++
}

func (l *Log[E]) check(pos int) {
	if pos <= l.base || pos > l.End() {
		panic(fmt.Sprintf("journal: position %d outside (%d, %d]", pos, l.base, l.End()))
	}
}
