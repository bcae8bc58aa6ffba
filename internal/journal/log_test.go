package journal

import "testing"

func TestLogAppendAndEntry(t *testing.T) {
	l := NewLog[string]()

	if l.Base() != 0 || l.End() != 0 || l.Len() != 0 {
		t.Error("new log should be empty at base 0")
	}

	l.Append("a")
	l.Append("b")
	l.Append("c")

	if l.End() != 3 {
		t.Errorf("End() = %d, want 3", l.End())
	}
	if got := l.Entry(1); got != "a" {
		t.Errorf("Entry(1) = %q, want %q", got, "a")
	}
	if got := l.Entry(3); got != "c" {
		t.Errorf("Entry(3) = %q, want %q", got, "c")
	}
}

func TestLogSpan(t *testing.T) {
	l := NewLog[int]()
	for i := 1; i <= 5; i++ {
		l.Append(i * 10)
	}

	tests := []struct {
		name           string
		after, through int
		want           []int
	}{
		{"empty", 2, 2, nil},
		{"full", 0, 5, []int{10, 20, 30, 40, 50}},
		{"middle", 1, 3, []int{20, 30}},
		{"tail", 4, 5, []int{50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Span(tt.after, tt.through)
			if len(got) != len(tt.want) {
				t.Fatalf("Span(%d,%d) len = %d, want %d", tt.after, tt.through, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Span(%d,%d)[%d] = %d, want %d", tt.after, tt.through, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLogTruncateAfter(t *testing.T) {
	l := NewLog[int]()
	for i := 1; i <= 5; i++ {
		l.Append(i)
	}

	l.TruncateAfter(3)
	if l.End() != 3 || l.Len() != 3 {
		t.Errorf("after truncate: End() = %d, Len() = %d", l.End(), l.Len())
	}

	// Truncating at or past the end is a no-op.
	l.TruncateAfter(10)
	if l.End() != 3 {
		t.Errorf("truncate past end changed End() to %d", l.End())
	}
}

func TestLogDropOldest(t *testing.T) {
	l := NewLog[string]()
	l.Append("a")
	l.Append("b")
	l.Append("c")

	l.DropOldest()

	if l.Base() != 1 {
		t.Errorf("Base() = %d, want 1", l.Base())
	}
	if l.End() != 3 {
		t.Errorf("End() = %d, want 3", l.End())
	}
	// Positions are absolute and survive the drop.
	if got := l.Entry(2); got != "b" {
		t.Errorf("Entry(2) = %q, want %q", got, "b")
	}
}

func TestLogOutOfRangePanics(t *testing.T) {
	l := NewLog[int]()
	l.Append(1)

	for _, pos := range []int{0, 2, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Entry(%d) should panic", pos)
				}
			}()
			l.Entry(pos)
		}()
	}
}
