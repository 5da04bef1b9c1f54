package behavior

import "time"

type fakeAnchor struct {
	translation float32
	height      int
	order       int
	raised      int
}

func (a *fakeAnchor) Translation() float32     { return a.translation }
func (a *fakeAnchor) SetTranslation(t float32) { a.translation = t }
func (a *fakeAnchor) Height() int              { return a.height }
func (a *fakeAnchor) Order() int               { return a.order }
func (a *fakeAnchor) BringToFront() {
	a.raised++
	a.order = 100
}

type fakeOverlay struct {
	kind     Kind
	margin   int
	height   int
	order    int
	layouts  int
	setCalls int
}

func (o *fakeOverlay) OverlayKind() Kind     { return o.kind }
func (o *fakeOverlay) BottomMargin() int     { return o.margin }
func (o *fakeOverlay) SetBottomMargin(m int) { o.margin = m; o.setCalls++ }
func (o *fakeOverlay) RequestLayout()        { o.layouts++ }
func (o *fakeOverlay) Height() int           { return o.height }
func (o *fakeOverlay) Order() int            { return o.order }

// clock is a manually advanced time source.
type clock struct {
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2022, 7, 25, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// newTestBehavior returns a configured behavior over a 56px anchor.
func newTestBehavior(inset int) (*Behavior, *fakeAnchor, *clock) {
	a := &fakeAnchor{height: 56}
	c := newClock()
	b := New(a, Config{Now: c.Now, AutoZOrder: true})
	if err := b.Configure(56, inset); err != nil {
		panic(err)
	}
	return b, a, c
}

// finish runs the current animation to completion.
func finish(b *Behavior, c *clock) {
	for b.Animating() {
		b.Tick(c.advance(16 * time.Millisecond))
	}
}
