package datagrid

import "testing"

func TestLocateIndex(t *testing.T) {
	sizes := []float32{10, 20, 30, 40}
	tests := []struct {
		offset float32
		start  int
		want   int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{10, 0, 0}, // running total reaches the offset at the end of index 0
		{10.5, 0, 1},
		{30, 0, 1},
		{31, 0, 2},
		{100, 0, 3},
		{1000, 0, 3},
		{-5, 0, 0},
		{25, 2, 2},
		{31, 2, 3},
		{0, 9, 3},
		{0, -2, 0},
	}
	for _, tt := range tests {
		if got := LocateIndex(tt.offset, sizes, tt.start); got != tt.want {
			t.Errorf("LocateIndex(%v, start=%d) = %d, want %d", tt.offset, tt.start, got, tt.want)
		}
	}
	if got := LocateIndex(5, nil, 0); got != -1 {
		t.Errorf("LocateIndex on empty sizes = %d, want -1", got)
	}
}

func TestLocateIndexIdempotentAndInBounds(t *testing.T) {
	sizes := []float32{12, 7, 33, 1, 48, 19, 5}
	for offset := float32(-10); offset < 200; offset += 3.5 {
		for start := 0; start < len(sizes); start++ {
			a := LocateIndex(offset, sizes, start)
			b := LocateIndex(offset, sizes, start)
			if a != b {
				t.Fatalf("LocateIndex(%v, %d) not idempotent: %d then %d", offset, start, a, b)
			}
			if a < start || a >= len(sizes) {
				t.Fatalf("LocateIndex(%v, %d) = %d out of [%d, %d)", offset, start, a, start, len(sizes))
			}
		}
	}
}

func TestVisibleRange(t *testing.T) {
	sizes := []float32{30, 30, 30, 30, 30, 30, 30, 30, 30, 30}
	tests := []struct {
		name   string
		pinned int
		pos    float32
		extent float32
		want   Range
	}{
		{"top", 1, 0, 90, Range{First: 1, End: 5}},
		{"scrolled", 1, 45, 60, Range{First: 2, End: 6}},
		{"bottom", 1, 240, 60, Range{First: 8, End: 10}},
		{"all pinned", 10, 0, 90, Range{First: 10, End: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRange(sizes, tt.pinned, tt.pos, tt.extent)
			if got != tt.want {
				t.Errorf("VisibleRange = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := Range{First: 2, End: 5}
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
	if !r.Contains(2) || !r.Contains(4) || r.Contains(5) || r.Contains(1) {
		t.Error("Contains does not honor the half-open range")
	}
	if (Range{First: 5, End: 2}).Len() != 0 {
		t.Error("inverted range should be empty")
	}
}

func TestScrollTrackerClampsAndReportsOverscroll(t *testing.T) {
	tr := NewScrollTracker("test")
	tr.SetExtents(500, 200)

	if over := tr.ScrollBy(120); over != 0 || tr.Offset() != 120 {
		t.Errorf("ScrollBy(120): offset %v, overscroll %v", tr.Offset(), over)
	}
	if over := tr.ScrollBy(400); over != 220 || tr.Offset() != 300 {
		t.Errorf("ScrollBy(400): offset %v, overscroll %v, want 300/220", tr.Offset(), over)
	}
	if over := tr.ScrollBy(-350); over != -50 || tr.Offset() != 0 {
		t.Errorf("ScrollBy(-350): offset %v, overscroll %v, want 0/-50", tr.Offset(), over)
	}

	tr.JumpTo(300)
	tr.SetExtents(250, 200)
	if tr.Offset() != 50 {
		t.Errorf("offset after shrinking extent = %v, want 50", tr.Offset())
	}
}

func TestScrollTrackerNotifiesOnlyOnChange(t *testing.T) {
	tr := NewScrollTracker("test")
	tr.SetExtents(100, 50)
	var seen []float32
	tr.OnChange(func(s *ScrollTracker) { seen = append(seen, s.Offset()) })

	tr.JumpTo(10)
	tr.JumpTo(10)
	tr.JumpTo(80) // clamped to 50
	tr.JumpTo(60) // still 50

	if len(seen) != 2 || seen[0] != 10 || seen[1] != 50 {
		t.Errorf("notifications = %v, want [10 50]", seen)
	}
}

func TestScrollTrackerEnsureVisible(t *testing.T) {
	tr := NewScrollTracker("test")
	tr.SetExtents(1000, 100)

	tr.EnsureVisible(150, 30)
	if tr.Offset() != 80 {
		t.Errorf("scroll down to item: offset %v, want 80", tr.Offset())
	}
	tr.EnsureVisible(100, 30)
	if tr.Offset() != 80 {
		t.Errorf("visible item moved the viewport to %v", tr.Offset())
	}
	tr.EnsureVisible(20, 30)
	if tr.Offset() != 20 {
		t.Errorf("scroll up to item: offset %v, want 20", tr.Offset())
	}
	tr.EnsureVisible(400, 300)
	if tr.Offset() != 400 {
		t.Errorf("oversized item: offset %v, want 400", tr.Offset())
	}
}
