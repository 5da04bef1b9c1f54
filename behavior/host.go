package behavior

// Anchor is the navigation bar. The host owns it; a Behavior only moves
// it vertically and reads its geometry.
type Anchor interface {
	// Translation is the current vertical offset in pixels. Zero is
	// fully shown, positive values move the anchor down.
	Translation() float32
	SetTranslation(float32)
	// Height is the anchor's rendered height in pixels.
	Height() int
	// Order is the anchor's drawing position among its siblings. Higher
	// values are drawn later.
	Order() int
	// BringToFront makes the anchor draw after all of its siblings.
	BringToFront()
}

// Overlay is a sibling view positioned relative to the anchor.
type Overlay interface {
	// BottomMargin is the margin between the overlay and the bottom of
	// the parent, in pixels.
	BottomMargin() int
	SetBottomMargin(int)
	// RequestLayout asks the host to lay the overlay out again.
	RequestLayout()
	Height() int
	Order() int
}

// OverlayID identifies an overlay for as long as it is attached. Hosts
// issue ids and must not reuse one while it is attached.
type OverlayID uint64
