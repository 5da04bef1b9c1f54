package behavior

// DefaultTouchSlop is used when Config.TouchSlop is not set. Doubled,
// it gives a slop threshold of 16px.
const DefaultTouchSlop = 8

// FlingVelocity is the vertical speed, in pixels per second, above which
// a fling changes visibility immediately.
const FlingVelocity = 1000

// scroller accumulates scroll deltas and decides when the anchor should
// be shown or hidden.
type scroller struct {
	slop     int
	offset   int
	hidden   bool
	disabled bool
}

func newScroller(touchSlop int) *scroller {
	if touchSlop <= 0 {
		touchSlop = DefaultTouchSlop
	}
	return &scroller{slop: touchSlop * 2}
}

func (s *scroller) reset() {
	s.offset = 0
}

// delta adds dy to the accumulator. Once the accumulated offset leaves
// [-slop, slop] it is reset and the direction is handled. The result
// reports whether visibility changed.
func (s *scroller) delta(dy int, dir Direction) bool {
	s.offset += dy
	if s.offset < -s.slop || s.offset > s.slop {
		s.offset = 0
		return s.handle(dir)
	}
	return false
}

// fling handles dir right away when the velocity is high enough.
func (s *scroller) fling(velocityY float32, dir Direction) bool {
	if velocityY > FlingVelocity || velocityY < -FlingVelocity {
		return s.handle(dir)
	}
	return false
}

// handle moves to the state implied by dir. Moving to the current state
// does nothing.
func (s *scroller) handle(dir Direction) bool {
	if s.disabled {
		return false
	}
	switch {
	case dir == Down && s.hidden:
		s.hidden = false
		return true
	case dir == Up && !s.hidden:
		s.hidden = true
		return true
	}
	return false
}
