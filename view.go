package main

import (
	"gioui.org/layout"
	"gioui.org/x/component"
)

// View is a scrolling page reachable from the navigation bar.
type View interface {
	NavItem() component.NavItem
	// Update processes input before the frame is laid out.
	Update(gtx layout.Context)
	// Len is the number of list elements in the view.
	Len() int
	// LayoutItem draws the list element at index.
	LayoutItem(gtx layout.Context, index int) layout.Dimensions
}
