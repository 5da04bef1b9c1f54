package theme

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

// NavBar holds the state of a bottom navigation bar: its destinations
// and which one is selected.
type NavBar struct {
	Items    []component.NavItem
	Selected int
	clicks   []widget.Clickable
}

// AddNavItem appends a destination to the bar.
func (n *NavBar) AddNavItem(item component.NavItem) {
	n.Items = append(n.Items, item)
	n.clicks = append(n.clicks, widget.Clickable{})
}

// Changed processes clicks and reports whether the selection changed.
func (n *NavBar) Changed() bool {
	changed := false
	for i := range n.clicks {
		if n.clicks[i].Clicked() && n.Selected != i {
			n.Selected = i
			changed = true
		}
	}
	return changed
}

// CurrentTag returns the tag of the selected destination.
func (n *NavBar) CurrentTag() interface{} {
	if n.Selected < 0 || n.Selected >= len(n.Items) {
		return nil
	}
	return n.Items[n.Selected].Tag
}

// NavBarStyle renders a NavBar.
type NavBarStyle struct {
	*NavBar
	Theme *Theme
	// Height of the bar above the bottom inset.
	Height unit.Dp
	// BottomInset is padding added below the destinations, used when the
	// platform draws its own navigation translucently over the bar.
	BottomInset unit.Dp
}

const DefaultNavBarHeightDp = 56

func (n NavBarStyle) Layout(gtx C) D {
	if n.Height == 0 {
		n.Height = unit.Dp(DefaultNavBarHeightDp)
	}
	size := image.Point{
		X: gtx.Constraints.Max.X,
		Y: gtx.Dp(n.Height) + gtx.Dp(n.BottomInset),
	}
	fill(gtx, n.Theme.Primary.Dark, size)
	gtx.Constraints = layout.Exact(image.Point{X: size.X, Y: gtx.Dp(n.Height)})
	children := make([]layout.FlexChild, len(n.Items))
	for i := range n.Items {
		i := i
		children[i] = layout.Flexed(1, func(gtx C) D {
			return n.clicks[i].Layout(gtx, func(gtx C) D {
				return n.item(gtx, i)
			})
		})
	}
	layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
	return D{Size: size}
}

func (n NavBarStyle) item(gtx C, i int) D {
	fg := n.Theme.Primary.Light
	if i == n.Selected {
		fg = n.Theme.Secondary.Default
	}
	item := n.Items[i]
	return layout.Center.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				if item.Icon == nil {
					return D{}
				}
				gtx.Constraints.Max = image.Pt(gtx.Dp(24), gtx.Dp(24))
				return item.Icon.Layout(gtx, fg)
			}),
			layout.Rigid(func(gtx C) D {
				l := material.Caption(n.Theme.Theme, item.Name)
				l.Color = fg
				return l.Layout(gtx)
			}),
		)
	})
}

// fill paints a rectangle of the given size at the origin.
func fill(gtx C, c color.NRGBA, size image.Point) {
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
