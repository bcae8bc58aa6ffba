package editor

import (
	"testing"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/policy"
)

func TestInsertCommand(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		cmd       InsertCommand
		wantText  string
		wantCaret int
	}{
		{name: "append", start: "ab", cmd: InsertCommand{At: 2, Text: "c"}, wantText: "abc", wantCaret: 3},
		{name: "prepend", start: "bc", cmd: InsertCommand{At: 0, Text: "a"}, wantText: "abc", wantCaret: 1},
		{name: "middle", start: "ac", cmd: InsertCommand{At: 1, Text: "b"}, wantText: "abc", wantCaret: 2},
		{name: "clamped", start: "a", cmd: InsertCommand{At: 99, Text: "b"}, wantText: "ab", wantCaret: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cmd.Apply(NewBuffer(tt.start))
			if got.Text() != tt.wantText || got.Caret() != tt.wantCaret {
				t.Errorf("Apply = (%q, %d), want (%q, %d)",
					got.Text(), got.Caret(), tt.wantText, tt.wantCaret)
			}
		})
	}
}

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		cmd       DeleteCommand
		wantText  string
		wantCaret int
	}{
		{name: "backspace at end", start: "abc", cmd: DeleteCommand{At: 3, N: 1}, wantText: "ab", wantCaret: 2},
		{name: "middle", start: "abc", cmd: DeleteCommand{At: 2, N: 1}, wantText: "ac", wantCaret: 1},
		{name: "multi byte count", start: "abc", cmd: DeleteCommand{At: 3, N: 2}, wantText: "a", wantCaret: 1},
		{name: "clamped at start", start: "ab", cmd: DeleteCommand{At: 1, N: 5}, wantText: "b", wantCaret: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cmd.Apply(NewBuffer(tt.start))
			if got.Text() != tt.wantText || got.Caret() != tt.wantCaret {
				t.Errorf("Apply = (%q, %d), want (%q, %d)",
					got.Text(), got.Caret(), tt.wantText, tt.wantCaret)
			}
		})
	}
}

func TestMoveCommand(t *testing.T) {
	b := MoveCommand{At: 1}.Apply(NewBuffer("abc"))
	if b.Text() != "abc" || b.Caret() != 1 {
		t.Errorf("move = (%q, %d)", b.Text(), b.Caret())
	}
	b = MoveCommand{At: -5}.Apply(b)
	if b.Caret() != 0 {
		t.Errorf("clamped move = %d", b.Caret())
	}
}

func TestEditingHistory(t *testing.T) {
	cur := rewind.New[Buffer]().WithPolicy(policy.ByDistance(2)).Build(NewBuffer(""))

	for _, r := range "hello" {
		at := cur.Current().Caret()
		cur.Edit(InsertCommand{At: at, Text: string(r)})
	}
	cur.Edit(DeleteCommand{At: cur.Current().Caret(), N: 1})

	if got := cur.Current().Text(); got != "hell" {
		t.Fatalf("text = %q", got)
	}

	st, err := cur.UndoTo(3)
	if err != nil {
		t.Fatalf("UndoTo(3): %v", err)
	}
	if st.Text() != "hel" || st.Caret() != 3 {
		t.Errorf("position 3 = (%q, %d)", st.Text(), st.Caret())
	}

	if st, err := cur.RedoTo(6); err != nil || st.Text() != "hell" {
		t.Errorf("RedoTo(6) = (%q, %v)", st.Text(), err)
	}
}

func TestRuneBoundaries(t *testing.T) {
	s := "aé☃"
	if got := nextRune(s, 0); got != 1 {
		t.Errorf("nextRune(0) = %d", got)
	}
	if got := nextRune(s, 1); got != 3 {
		t.Errorf("nextRune(1) = %d", got)
	}
	if got := prevRune(s, len(s)); got != 3 {
		t.Errorf("prevRune(end) = %d", got)
	}
	if got := prevRune(s, 0); got != 0 {
		t.Errorf("prevRune(0) = %d", got)
	}
}
