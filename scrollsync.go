package datagrid

// ForwardRule mirrors From's offset onto To whenever they differ.
type ForwardRule struct {
	From, To *ScrollTracker
}

// Synchronizer keeps coupled scroll trackers in lockstep through an explicit
// forwarding table. Offsets are copied with JumpTo (no animation) and only
// when the destination differs from the source. A forward that triggers
// further forwards back into an in-flight source is dropped.
type Synchronizer struct {
	rules    []ForwardRule
	inFlight map[*ScrollTracker]bool
}

// NewSynchronizer wires the rules to their source trackers.
func NewSynchronizer(rules ...ForwardRule) *Synchronizer {
	s := &Synchronizer{rules: rules, inFlight: make(map[*ScrollTracker]bool)}
	seen := make(map[*ScrollTracker]bool)
	for _, r := range rules {
		if seen[r.From] {
			continue
		}
		seen[r.From] = true
		r.From.OnChange(s.OffsetChanged)
	}
	return s
}

// Rules returns the forwarding table.
func (s *Synchronizer) Rules() []ForwardRule {
	return s.rules
}

// OffsetChanged evaluates every rule whose source is src.
func (s *Synchronizer) OffsetChanged(src *ScrollTracker) {
	if s.inFlight[src] {
		return
	}
	s.inFlight[src] = true
	defer delete(s.inFlight, src)

	for _, r := range s.rules {
		if r.From != src || s.inFlight[r.To] {
			continue
		}
		if r.To.Offset() != src.Offset() {
			gridLogger.Debug("scroll forward", "from", src.Name(), "to", r.To.Name(), "offset", src.Offset())
			r.To.JumpTo(src.Offset())
		}
	}
}

// Resync applies every rule once, e.g. after extents changed.
func (s *Synchronizer) Resync() {
	for _, r := range s.rules {
		if r.To.Offset() != r.From.Offset() {
			r.To.JumpTo(r.From.Offset())
		}
	}
}

// OuterScroller is an enclosing scrollable that receives overscroll.
type OuterScroller interface {
	ScrollBy(dx, dy float32)
}

// ScrollPhysics decides how vertical drags are split between the grid and an outer scroller.
type ScrollPhysics int

const (
	// PhysicsClamping scrolls the grid first and forwards what it could not consume.
	PhysicsClamping ScrollPhysics = iota
	// PhysicsNeverScrollable hands every vertical delta to the outer scroller.
	PhysicsNeverScrollable
)
