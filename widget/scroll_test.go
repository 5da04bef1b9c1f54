package widget

import (
	"testing"
	"time"

	"gioui.org/layout"
	"github.com/google/go-cmp/cmp"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
)

func TestScrollTrackerGesture(t *testing.T) {
	var s ScrollTracker
	t0 := time.Date(2022, 7, 25, 0, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	if events := s.Update(at(0), layout.Position{}); events != nil {
		t.Fatalf("first update produced %v", events)
	}
	got := s.Update(at(16), layout.Position{Offset: 10})
	want := []ScrollEvent{
		{Type: ScrollStart},
		{Type: ScrollDelta, Delta: 10, Direction: behavior.Up},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("gesture start (-want +got):\n%s", diff)
	}
	if !s.Active() {
		t.Fatalf("tracker not active after movement")
	}

	got = s.Update(at(32), layout.Position{Offset: 40})
	if len(got) != 2 || got[1].Type != ScrollFling || got[1].Direction != behavior.Up || got[1].Velocity <= behavior.FlingVelocity {
		t.Fatalf("expected delta and fling, got %+v", got)
	}

	// A gesture flings at most once.
	got = s.Update(at(48), layout.Position{Offset: 90})
	if len(got) != 1 || got[0].Type != ScrollDelta {
		t.Fatalf("expected a single delta, got %+v", got)
	}

	if got = s.Update(at(100), layout.Position{Offset: 90}); len(got) != 0 {
		t.Fatalf("stopped before idle timeout: %+v", got)
	}
	got = s.Update(at(48+150), layout.Position{Offset: 90})
	if diff := cmp.Diff([]ScrollEvent{{Type: ScrollStop}}, got); diff != "" {
		t.Fatalf("gesture stop (-want +got):\n%s", diff)
	}
	if s.Active() {
		t.Fatalf("tracker still active after stop")
	}
}

func TestScrollTrackerSlowScrollNoFling(t *testing.T) {
	var s ScrollTracker
	t0 := time.Now()
	s.Update(t0, layout.Position{})
	for i := 1; i <= 10; i++ {
		for _, e := range s.Update(t0.Add(time.Duration(i)*16*time.Millisecond), layout.Position{Offset: -i}) {
			if e.Type == ScrollFling {
				t.Fatalf("slow scroll reported a fling: %+v", e)
			}
			if e.Type == ScrollDelta && e.Direction != behavior.Down {
				t.Fatalf("negative delta reported as %v", e.Direction)
			}
		}
	}
}

func TestScrollTrackerDelta(t *testing.T) {
	type tc struct {
		from, to layout.Position
		want     int
	}
	for name, c := range map[string]tc{
		"same item": {
			from: layout.Position{First: 1, Offset: 5},
			to:   layout.Position{First: 1, Offset: 30},
			want: 25,
		},
		"forward past measured items": {
			from: layout.Position{First: 0, Offset: 20},
			to:   layout.Position{First: 2, Offset: 5},
			want: 100 + 50 - 20 + 5,
		},
		"backward past measured items": {
			from: layout.Position{First: 2, Offset: 5},
			to:   layout.Position{First: 0, Offset: 20},
			want: -(100 + 50 - 20 + 5),
		},
		"unmeasured items count as the average": {
			from: layout.Position{First: 1},
			to:   layout.Position{First: 3},
			want: 50 + 75,
		},
	} {
		t.Run(name, func(t *testing.T) {
			var s ScrollTracker
			s.Measure(0, 100)
			s.Measure(1, 50)
			if got := s.delta(c.from, c.to); got != c.want {
				t.Errorf("delta = %d, want %d", got, c.want)
			}
		})
	}
}

func TestScrollTrackerMeasuringDoesNotScroll(t *testing.T) {
	var s ScrollTracker
	t0 := time.Now()
	s.Measure(0, 40)
	s.Update(t0, layout.Position{First: 5, Offset: 10})
	// Items ahead of the viewport get measured while nothing moves.
	for i := 1; i < 5; i++ {
		s.Measure(i, 300)
	}
	if got := s.Update(t0.Add(16*time.Millisecond), layout.Position{First: 5, Offset: 10}); len(got) != 0 {
		t.Fatalf("measuring items produced %+v", got)
	}
	if s.Active() {
		t.Fatalf("tracker active without movement")
	}
}

func TestScrollTrackerResumeMidList(t *testing.T) {
	var s ScrollTracker
	t0 := time.Now()
	s.Update(t0, layout.Position{First: 50, Offset: 10})
	s.Measure(50, 80)
	s.Measure(49, 200)
	got := s.Update(t0.Add(16*time.Millisecond), layout.Position{First: 49, Offset: 190})
	want := []ScrollEvent{
		{Type: ScrollStart},
		{Type: ScrollDelta, Delta: -20, Direction: behavior.Down},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scrolling back one item (-want +got):\n%s", diff)
	}
}
