package rewind

// Command transforms one state value into the next.
//
// Commands are stored in the history and re-applied during replay, so
// Apply must be deterministic: applying the same command to an equivalent
// prior state must reproduce the same result. The engine does not check
// this; violating it silently corrupts reconstruction. Commands with side
// effects or nondeterminism belong in Cursor.TryEdit instead.
type Command[S any] interface {
	Apply(S) S
}

// CommandFunc adapts a plain function to the Command interface.
type CommandFunc[S any] func(S) S

// Apply calls f.
func (f CommandFunc[S]) Apply(s S) S { return f(s) }

// Describer is implemented by commands that can describe themselves for
// history listings.
type Describer interface {
	Description() string
}

// describe returns the command's self-description, if it offers one.
func describe(c any) string {
	if d, ok := c.(Describer); ok {
		return d.Description()
	}
	return ""
}

// conditionalCommand wraps an EditIf closure that accepted its input. The
// closure contract guarantees it accepts again on replay.
type conditionalCommand[S any] struct {
	f func(S) (S, bool)
}

func (cc conditionalCommand[S]) Apply(s S) S {
	next, ok := cc.f(s)
	if !ok {
		panic("rewind: conditional command declined during replay")
	}
	return next
}
