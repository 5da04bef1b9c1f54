package widget

import (
	"time"

	"gioui.org/layout"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
)

// ScrollEventType distinguishes the events reported by a ScrollTracker.
type ScrollEventType uint8

const (
	ScrollStart ScrollEventType = iota
	ScrollDelta
	ScrollFling
	ScrollStop
)

// ScrollEvent is a nested scroll event derived from list positions.
type ScrollEvent struct {
	Type ScrollEventType
	// Delta is the distance scrolled since the previous event, in pixels.
	// Positive values scroll further into the content.
	Delta int
	// Velocity is the estimated scroll speed of a fling in pixels per
	// second.
	Velocity  float32
	Direction behavior.Direction
}

const (
	// DefaultIdleTimeout is how long a list must stay still before its
	// gesture is considered stopped.
	DefaultIdleTimeout = 150 * time.Millisecond
	// DefaultFlingWindow is how far back movement is considered when
	// estimating velocity.
	DefaultFlingWindow = 100 * time.Millisecond
)

type scrollSample struct {
	at time.Time
	dy int
}

// ScrollTracker turns the successive positions of a layout.List into
// scroll gestures. Item heights are learned through Measure. Deltas are
// computed between consecutive positions from the heights of the items
// scrolled past, so measuring items never moves the content. Items that
// have never been measured are assumed to be of average height.
//
// The zero value is ready to use.
type ScrollTracker struct {
	IdleTimeout time.Duration
	FlingWindow time.Duration

	heights  map[int]int
	pos      layout.Position
	havePos  bool
	active   bool
	flung    bool
	lastMove time.Time
	samples  []scrollSample
}

// Measure records the height of the list element at index.
func (s *ScrollTracker) Measure(index, height int) {
	if s.heights == nil {
		s.heights = make(map[int]int)
	}
	s.heights[index] = height
}

// Active reports whether a gesture is in progress. Hosts should keep
// producing frames while it is, so that the stop can be observed.
func (s *ScrollTracker) Active() bool {
	return s.active
}

// span returns the total height of the items in [from, to).
func (s *ScrollTracker) span(from, to int) int {
	total, avg := 0, -1
	for i := from; i < to; i++ {
		if h, ok := s.heights[i]; ok {
			total += h
			continue
		}
		if avg < 0 {
			avg = s.averageHeight()
		}
		total += avg
	}
	return total
}

func (s *ScrollTracker) averageHeight() int {
	if len(s.heights) == 0 {
		return 0
	}
	total := 0
	for _, h := range s.heights {
		total += h
	}
	return total / len(s.heights)
}

// delta returns the distance in pixels the content moved going from one
// list position to the next.
func (s *ScrollTracker) delta(from, to layout.Position) int {
	switch {
	case to.First > from.First:
		return s.span(from.First, to.First) - from.Offset + to.Offset
	case to.First < from.First:
		return to.Offset - from.Offset - s.span(to.First, from.First)
	default:
		return to.Offset - from.Offset
	}
}

// Update compares pos with the previous position and returns the
// resulting events.
func (s *ScrollTracker) Update(now time.Time, pos layout.Position) []ScrollEvent {
	idle := s.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	if !s.havePos {
		s.pos, s.havePos = pos, true
		return nil
	}
	dy := s.delta(s.pos, pos)
	s.pos = pos

	var events []ScrollEvent
	if dy == 0 {
		if s.active && now.Sub(s.lastMove) >= idle {
			s.active = false
			s.samples = s.samples[:0]
			events = append(events, ScrollEvent{Type: ScrollStop})
		}
		return events
	}
	if !s.active {
		s.active = true
		s.flung = false
		s.samples = append(s.samples[:0], scrollSample{at: s.lastMoveOr(now)})
		events = append(events, ScrollEvent{Type: ScrollStart})
	}
	dir := behavior.DirectionOf(float32(dy))
	events = append(events, ScrollEvent{Type: ScrollDelta, Delta: dy, Direction: dir})
	s.lastMove = now
	s.samples = append(s.samples, scrollSample{at: now, dy: dy})

	if v := s.velocity(now); !s.flung && (v > behavior.FlingVelocity || v < -behavior.FlingVelocity) {
		s.flung = true
		events = append(events, ScrollEvent{
			Type:      ScrollFling,
			Velocity:  v,
			Direction: behavior.DirectionOf(v),
		})
	}
	return events
}

// lastMoveOr returns the time of the previous movement if it is recent
// enough to bound the first sample of a gesture.
func (s *ScrollTracker) lastMoveOr(now time.Time) time.Time {
	if s.lastMove.IsZero() || now.Sub(s.lastMove) > s.window() {
		return now
	}
	return s.lastMove
}

func (s *ScrollTracker) window() time.Duration {
	if s.FlingWindow <= 0 {
		return DefaultFlingWindow
	}
	return s.FlingWindow
}

// velocity estimates the scroll speed over the fling window in pixels
// per second.
func (s *ScrollTracker) velocity(now time.Time) float32 {
	cutoff := now.Add(-s.window())
	for len(s.samples) > 2 && s.samples[1].at.Before(cutoff) {
		s.samples = s.samples[1:]
	}
	if len(s.samples) < 2 {
		return 0
	}
	elapsed := now.Sub(s.samples[0].at)
	if elapsed <= 0 {
		return 0
	}
	dy := 0
	for _, sample := range s.samples[1:] {
		dy += sample.dy
	}
	return float32(float64(dy) / elapsed.Seconds())
}
