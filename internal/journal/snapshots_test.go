package journal

import "testing"

func TestStoreCaptureAndNearest(t *testing.T) {
	s := NewStore[string](0)
	s.Capture(0, "zero", false)
	s.Capture(4, "four", false)
	s.Capture(2, "two", false)

	tests := []struct {
		pos     int
		wantPos int
		want    string
	}{
		{0, 0, "zero"},
		{1, 0, "zero"},
		{2, 2, "two"},
		{3, 2, "two"},
		{4, 4, "four"},
		{100, 4, "four"},
	}

	for _, tt := range tests {
		got := s.NearestAtOrBefore(tt.pos)
		if got.Position != tt.wantPos || got.State != tt.want {
			t.Errorf("NearestAtOrBefore(%d) = (%d, %q), want (%d, %q)",
				tt.pos, got.Position, got.State, tt.wantPos, tt.want)
		}
	}
}

func TestStoreCaptureReplaces(t *testing.T) {
	s := NewStore[string](0)
	s.Capture(0, "zero", false)
	s.Capture(1, "old", false)
	s.Capture(1, "new", false)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.NearestAtOrBefore(1); got.State != "new" {
		t.Errorf("replacement not applied: got %q", got.State)
	}
}

func TestStoreTruncateAfter(t *testing.T) {
	s := NewStore[int](0)
	for _, p := range []int{0, 2, 4, 6} {
		s.Capture(p, p, false)
	}

	s.TruncateAfter(3)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.NearestAtOrBefore(10); got.Position != 2 {
		t.Errorf("highest surviving position = %d, want 2", got.Position)
	}
}

func TestStoreEvictionOldestFirstKeepsBase(t *testing.T) {
	s := NewStore[int](2)
	s.Capture(0, 0, false)
	s.Capture(1, 1, false)
	s.Capture(2, 2, false) // evicts position 1, never position 0

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(0) {
		t.Error("base snapshot was evicted")
	}
	if s.Has(1) {
		t.Error("position 1 should have been evicted")
	}
	if !s.Has(2) {
		t.Error("newest snapshot missing")
	}
}

func TestStoreEvictionSkipsPinned(t *testing.T) {
	s := NewStore[int](2)
	s.Capture(0, 0, false)
	s.Capture(1, 1, true)
	s.Capture(2, 2, false) // the only unpinned candidate is itself

	if !s.Has(1) {
		t.Error("pinned snapshot was evicted")
	}
	if !s.Has(0) {
		t.Error("base snapshot was evicted")
	}
	if s.Has(2) || s.Len() != 2 {
		t.Errorf("Len() = %d, want the bound to hold by evicting the newest", s.Len())
	}
}

func TestStorePinnedMayExceedCapacity(t *testing.T) {
	s := NewStore[int](2)
	s.Capture(0, 0, false)
	s.Capture(1, 1, true)
	s.Capture(2, 2, true)
	s.Capture(3, 3, true)

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want all pinned snapshots retained", s.Len())
	}
}

func TestStoreCapacityOneKeepsBaseOnly(t *testing.T) {
	s := NewStore[int](1)
	s.Capture(0, 0, false)
	s.Capture(1, 1, false)
	s.Capture(2, 2, false)

	if s.Len() != 1 || !s.Has(0) {
		t.Errorf("Len() = %d, Has(0) = %v, want only the base", s.Len(), s.Has(0))
	}
}

func TestStoreRebaseToExistingSnapshot(t *testing.T) {
	s := NewStore[int](0)
	for _, p := range []int{0, 1, 3, 5} {
		s.Capture(p, p, false)
	}

	s.Rebase(3, -1)

	if s.Base() != 3 {
		t.Errorf("Base() = %d, want 3", s.Base())
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	// The stored state survives; the fallback argument is unused.
	if got := s.NearestAtOrBefore(3); got.State != 3 {
		t.Errorf("state at new base = %d, want 3", got.State)
	}
}

func TestStoreRebaseInstallsMissingBase(t *testing.T) {
	s := NewStore[int](2)
	s.Capture(0, 0, false)
	s.Capture(5, 5, false)

	s.Rebase(2, 2)

	if s.Base() != 2 {
		t.Errorf("Base() = %d, want 2", s.Base())
	}
	if got := s.NearestAtOrBefore(4); got.Position != 2 || got.State != 2 {
		t.Errorf("new base = (%d, %d)", got.Position, got.State)
	}
	if !s.Has(5) {
		t.Error("later snapshot lost by rebase")
	}
}
