package widget

import (
	"gioui.org/layout"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// NavBar is the anchor of a Coordinator: the bar along the bottom edge
// that slides down when hidden.
type NavBar struct {
	translation float32
	height      int
	order       int
	behavior    *behavior.Behavior
}

var (
	_ behavior.Anchor = &NavBar{}
	_ behavior.Holder = &NavBar{}
)

// Translation is the current downward offset of the bar in pixels.
func (n *NavBar) Translation() float32 {
	return n.translation
}

func (n *NavBar) SetTranslation(t float32) {
	n.translation = t
}

// Height is the height of the bar as of the last layout.
func (n *NavBar) Height() int {
	return n.height
}

func (n *NavBar) Order() int {
	return n.order
}

// BringToFront raises the bar above every overlay laid out so far.
func (n *NavBar) BringToFront() {
	n.order = raisedOrder
}

// Behavior returns the behavior driving the bar.
func (n *NavBar) Behavior() *behavior.Behavior {
	return n.behavior
}
