package editor

import "fmt"

// Buffer is the editor's document state: the full text plus the caret
// offset in bytes. It is an immutable value; commands build new buffers.
type Buffer struct {
	text  string
	caret int
}

// NewBuffer returns a buffer over text with the caret at the end.
func NewBuffer(text string) Buffer {
	return Buffer{text: text, caret: len(text)}
}

// Text returns the buffer contents.
func (b Buffer) Text() string { return b.text }

// Caret returns the caret's byte offset.
func (b Buffer) Caret() int { return b.caret }

// Clone satisfies the duplication contract for the history cursor.
func (b Buffer) Clone() Buffer { return b }

// clampCaret keeps an offset inside the text.
func (b Buffer) clampCaret(at int) int {
	if at < 0 {
		return 0
	}
	if at > len(b.text) {
		return len(b.text)
	}
	return at
}

// InsertCommand inserts Text at byte offset At, leaving the caret after
// the inserted text.
type InsertCommand struct {
	At   int
	Text string
}

func (c InsertCommand) Apply(b Buffer) Buffer {
	at := b.clampCaret(c.At)
	return Buffer{
		text:  b.text[:at] + c.Text + b.text[at:],
		caret: at + len(c.Text),
	}
}

func (c InsertCommand) Description() string {
	return fmt.Sprintf("insert %q at %d", c.Text, c.At)
}

// DeleteCommand removes N bytes ending at byte offset At, the shape a
// backspace produces. The removed text is derived from the buffer, so
// the command replays without carrying it.
type DeleteCommand struct {
	At int
	N  int
}

func (c DeleteCommand) Apply(b Buffer) Buffer {
	end := b.clampCaret(c.At)
	start := b.clampCaret(end - c.N)
	return Buffer{
		text:  b.text[:start] + b.text[end:],
		caret: start,
	}
}

func (c DeleteCommand) Description() string {
	return fmt.Sprintf("delete %d at %d", c.N, c.At)
}

// MoveCommand places the caret at byte offset At without changing the
// text. Recording movement keeps undo restoring the caret as well.
type MoveCommand struct {
	At int
}

func (c MoveCommand) Apply(b Buffer) Buffer {
	return Buffer{text: b.text, caret: b.clampCaret(c.At)}
}

func (c MoveCommand) Description() string {
	return fmt.Sprintf("move to %d", c.At)
}
