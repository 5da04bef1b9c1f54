package widget

import (
	"gioui.org/layout"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
)

// Overlay is a view floating above the content of a Coordinator whose
// distance from the bottom edge is managed by the navigation bar's
// behavior.
type Overlay struct {
	// Kind selects how the overlay follows the bar.
	Kind behavior.Kind
	// Margin is the distance between the overlay and the bottom edge in
	// pixels. Its value when the overlay is attached is kept as the
	// overlay's baseline.
	Margin int
	// Alignment places the overlay horizontally.
	Alignment layout.Alignment
	// Widget draws the overlay.
	Widget layout.Widget

	id       behavior.OverlayID
	order    int
	height   int
	attached bool
	dirty    bool
}

var (
	_ behavior.Overlay = &Overlay{}
	_ behavior.Kinded  = &Overlay{}
)

func (o *Overlay) OverlayKind() behavior.Kind {
	return o.Kind
}

func (o *Overlay) BottomMargin() int {
	return o.Margin
}

func (o *Overlay) SetBottomMargin(m int) {
	o.Margin = m
}

// RequestLayout marks the overlay as moved since the last frame.
func (o *Overlay) RequestLayout() {
	o.dirty = true
}

// Height is the height of the overlay as of the last layout.
func (o *Overlay) Height() int {
	return o.height
}

func (o *Overlay) Order() int {
	return o.order
}

// Attached reports whether the overlay is part of a Coordinator.
func (o *Overlay) Attached() bool {
	return o.attached
}

// Moved reports and clears whether the behavior moved the overlay since
// the last call.
func (o *Overlay) Moved() bool {
	moved := o.dirty
	o.dirty = false
	return moved
}
