package datagrid

// LocateIndex walks cumulative sizes from start until the running total reaches
// offset and returns that index. The result is clamped to [start, len(sizes)-1]
// (or to the last index when start is past the end); it is -1 only for empty sizes.
//
// The scan is linear: sizes change per frame and the target grids (a few
// thousand rows) keep it cheap. A Fenwick tree would keep the same contract.
func LocateIndex(offset float32, sizes []float32, start int) int {
	n := len(sizes)
	if n == 0 {
		return -1
	}
	if start < 0 {
		start = 0
	}
	if start >= n {
		return n - 1
	}
	var cum float32
	for i := start; i < n; i++ {
		cum += sizes[i]
		if cum >= offset {
			return i
		}
	}
	return n - 1
}

// Range is a half-open index range [First, End).
type Range struct {
	First, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End < r.First {
		return 0
	}
	return r.End - r.First
}

// Contains reports whether i is in the range.
func (r Range) Contains(i int) bool {
	return i >= r.First && i < r.End
}

// VisibleRange returns the scrollable indices visible through a viewport of the
// given extent at scroll position pos. Indices below pinned are never part of it.
// One extra index past the strictly visible range is included as overscan.
func VisibleRange(sizes []float32, pinned int, pos, extent float32) Range {
	n := len(sizes)
	if pinned >= n {
		return Range{First: n, End: n}
	}
	first := LocateIndex(pos, sizes, pinned)
	last := LocateIndex(pos+extent, sizes, pinned) + 1 // overscan
	return Range{First: first, End: minInt(last+1, n)}
}

// ScrollTracker holds one scroll position bounded to [0, extent-viewport].
// Listeners run synchronously after every change.
type ScrollTracker struct {
	name     string
	offset   float32
	extent   float32 // total content size
	viewport float32 // visible size

	listeners []func(*ScrollTracker)
}

// NewScrollTracker creates a tracker at offset 0.
func NewScrollTracker(name string) *ScrollTracker {
	return &ScrollTracker{name: name}
}

// Name returns the tracker's name (used in logs).
func (t *ScrollTracker) Name() string { return t.name }

// Offset returns the current scroll position.
func (t *ScrollTracker) Offset() float32 { return t.offset }

// Extent returns the total content size.
func (t *ScrollTracker) Extent() float32 { return t.extent }

// Viewport returns the visible size.
func (t *ScrollTracker) Viewport() float32 { return t.viewport }

// MaxOffset returns the largest valid offset.
func (t *ScrollTracker) MaxOffset() float32 {
	return maxf(0, t.extent-t.viewport)
}

// OnChange registers a listener called after the offset changes.
func (t *ScrollTracker) OnChange(fn func(*ScrollTracker)) {
	t.listeners = append(t.listeners, fn)
}

// SetExtents updates content and viewport sizes and re-clamps the offset.
func (t *ScrollTracker) SetExtents(extent, viewport float32) {
	t.extent = maxf(0, extent)
	t.viewport = maxf(0, viewport)
	t.JumpTo(t.offset)
}

// JumpTo moves to offset (clamped) without animation and returns the applied offset.
func (t *ScrollTracker) JumpTo(offset float32) float32 {
	next := clampf(offset, 0, t.MaxOffset())
	if next == t.offset {
		return next
	}
	t.offset = next
	for _, fn := range t.listeners {
		fn(t)
	}
	return next
}

// ScrollBy moves by delta and returns the part of delta that could not be applied.
func (t *ScrollTracker) ScrollBy(delta float32) (overscroll float32) {
	want := t.offset + delta
	got := t.JumpTo(want)
	return want - got
}

// EnsureVisible scrolls the minimum amount so that [start, start+size) is inside
// the viewport. Items larger than the viewport are aligned to their start.
func (t *ScrollTracker) EnsureVisible(start, size float32) {
	switch {
	case start < t.offset || size > t.viewport:
		t.JumpTo(start)
	case start+size > t.offset+t.viewport:
		t.JumpTo(start + size - t.viewport)
	}
}
