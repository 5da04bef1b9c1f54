package widget

import (
	"image"
	"log"
	"sort"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
)

// raisedOrder is the drawing order of a navigation bar brought to front.
const raisedOrder = 1 << 30

type removal struct {
	id      behavior.OverlayID
	overlay *Overlay
}

// Coordinator lays out scrolling content with a navigation bar along its
// bottom edge and overlays floating above it. It feeds the content's
// scroll gestures to the bar's behavior and keeps the overlays clear of
// the bar while it shows and hides.
type Coordinator struct {
	NavBar NavBar
	Scroll ScrollTracker
	// List, if set, is observed for scroll gestures after the content
	// has been laid out.
	List *layout.List

	autoZOrder bool
	now        time.Time
	overlays   []*Overlay
	pending    []*Overlay
	removed    []removal
	nextID     behavior.OverlayID
	nextOrder  int

	height, inset int
}

// NewCoordinator returns a Coordinator whose bar is driven by a Behavior
// built from config. Unless config sets a clock, animations are timed by
// the frame time of the current layout.
func NewCoordinator(config behavior.Config) *Coordinator {
	c := &Coordinator{autoZOrder: config.AutoZOrder}
	if config.Now == nil {
		config.Now = func() time.Time { return c.now }
	}
	c.NavBar.behavior = behavior.New(&c.NavBar, config)
	c.height, c.inset = -1, -1
	return c
}

// Behavior returns the behavior driving the navigation bar.
func (c *Coordinator) Behavior() *behavior.Behavior {
	return c.NavBar.behavior
}

// Attach adds o to the coordinator. The overlay is registered with the
// behavior on the next layout, keeping its current Margin as baseline,
// so an overlay attached again should have its Margin reset first.
func (c *Coordinator) Attach(o *Overlay) {
	if o.attached {
		return
	}
	c.nextID++
	c.nextOrder++
	o.id = c.nextID
	o.order = c.nextOrder
	o.attached = true
	c.pending = append(c.pending, o)
}

// Detach removes o from the coordinator on the next layout.
func (c *Coordinator) Detach(o *Overlay) {
	if !o.attached {
		return
	}
	o.attached = false
	for i, p := range c.pending {
		if p == o {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
	c.removed = append(c.removed, removal{id: o.id, overlay: o})
}

// Layout draws content filling the available space, the overlays and the
// navigation bar drawn by bar. bottomInset is the space in pixels the
// platform reserves below the bar; bar is expected to pad itself by it.
func (c *Coordinator) Layout(gtx C, bottomInset int, content, bar layout.Widget) D {
	size := gtx.Constraints.Max
	b := c.Behavior()
	c.now = gtx.Now

	// Lay out the content first so the list position is current.
	contentMacro := op.Record(gtx.Ops)
	content(gtx)
	contentCall := contentMacro.Stop()

	barGtx := gtx
	barGtx.Constraints.Min = image.Point{X: size.X}
	barMacro := op.Record(gtx.Ops)
	barDims := bar(barGtx)
	barCall := barMacro.Stop()
	c.NavBar.height = barDims.Size.Y

	for _, r := range c.removed {
		b.OnDependentRemoved(r.id)
		c.remove(r.overlay)
	}
	c.removed = c.removed[:0]

	if barDims.Size.Y != c.height || bottomInset != c.inset {
		if err := b.Configure(barDims.Size.Y, bottomInset); err != nil {
			log.Printf("failed configuring navigation bar: %v", err)
		} else {
			c.reattach()
		}
		c.height, c.inset = barDims.Size.Y, bottomInset
	}

	if c.List != nil {
		c.dispatchScroll(gtx)
	}
	b.Tick(gtx.Now)
	if b.Animating() || c.Scroll.Active() {
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	// Record overlays, registering new ones and re-evaluating any whose
	// size changed.
	calls := make(map[*Overlay]op.CallOp, len(c.overlays)+len(c.pending))
	dims := make(map[*Overlay]D, len(c.overlays)+len(c.pending))
	c.overlays = append(c.overlays, c.pending...)
	fresh := c.pending
	c.pending = nil
	for _, o := range c.overlays {
		oGtx := gtx
		oGtx.Constraints.Min = image.Point{}
		m := op.Record(gtx.Ops)
		d := o.Widget(oGtx)
		calls[o] = m.Stop()
		dims[o] = d
		changed := o.height != d.Size.Y
		o.height = d.Size.Y
		if changed || contains(fresh, o) {
			if _, err := b.OnDependentChanged(o.id, o); err != nil {
				log.Printf("failed updating overlay %d: %v", o.id, err)
			}
		}
	}

	contentCall.Add(gtx.Ops)

	drawBar := func() {
		y := size.Y - barDims.Size.Y + int(c.NavBar.Translation())
		offset(gtx, 0, y, barCall)
	}
	// Draw in attach order; the bar sits below overlays unless it has
	// been raised or the host keeps it on top on its own.
	ordered := append([]*Overlay(nil), c.overlays...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })
	barDrawn := false
	for _, o := range ordered {
		if !barDrawn && !c.autoZOrder && c.NavBar.Order() < o.order {
			drawBar()
			barDrawn = true
		}
		d := dims[o]
		x := 0
		switch o.Alignment {
		case layout.Middle:
			x = (size.X - d.Size.X) / 2
		case layout.End:
			x = size.X - d.Size.X
		}
		offset(gtx, x, size.Y-o.Margin-d.Size.Y, calls[o])
	}
	if !barDrawn {
		drawBar()
	}
	return D{Size: size}
}

// dispatchScroll feeds the list's scroll gestures to the behavior.
func (c *Coordinator) dispatchScroll(gtx C) {
	b := c.Behavior()
	for _, e := range c.Scroll.Update(gtx.Now, c.List.Position) {
		var err error
		switch e.Type {
		case ScrollStart:
			b.OnScrollStart()
		case ScrollStop:
			b.OnScrollStop()
		case ScrollDelta:
			err = b.OnScrollDelta(e.Delta, e.Direction)
		case ScrollFling:
			err = b.OnFling(e.Velocity, e.Direction)
		}
		if err != nil {
			log.Printf("failed handling scroll: %v", err)
		}
	}
}

// reattach registers every attached overlay again so that it picks up
// the bar's new geometry. Each overlay is restored to its baseline
// margin first.
func (c *Coordinator) reattach() {
	b := c.Behavior()
	for _, o := range c.overlays {
		d, ok := b.Dependent(o.id)
		if !ok {
			continue
		}
		o.Margin = d.Baseline()
		b.OnDependentRemoved(o.id)
		if _, err := b.OnDependentChanged(o.id, o); err != nil {
			log.Printf("failed updating overlay %d: %v", o.id, err)
		}
	}
}

func (c *Coordinator) remove(o *Overlay) {
	for i, existing := range c.overlays {
		if existing == o {
			c.overlays = append(c.overlays[:i], c.overlays[i+1:]...)
			return
		}
	}
}

func contains(overlays []*Overlay, o *Overlay) bool {
	for _, candidate := range overlays {
		if candidate == o {
			return true
		}
	}
	return false
}

// offset replays call translated by (x, y).
func offset(gtx C, x, y int, call op.CallOp) {
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
