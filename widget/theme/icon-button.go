package theme

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// ActionButton applies defaults before rendering a floating action
// button as a `material.IconButtonStyle`. The main parameters for each
// button are the state and icon.
type ActionButton struct {
	Theme       *Theme
	Button      *widget.Clickable
	Icon        *widget.Icon
	Description string
	Size        unit.Dp
	Inset       layout.Inset
}

const DefaultActionButtonIconDp = 24

func (btn ActionButton) Layout(gtx C) D {
	if btn.Size == 0 {
		btn.Size = unit.Dp(DefaultActionButtonIconDp)
	}
	if btn.Inset == (layout.Inset{}) {
		btn.Inset = layout.UniformInset(unit.Dp(16))
	}
	return layout.Inset{Right: unit.Dp(16), Bottom: unit.Dp(16)}.Layout(gtx, func(gtx C) D {
		return material.IconButtonStyle{
			Background:  btn.Theme.Secondary.Default,
			Color:       black,
			Icon:        btn.Icon,
			Size:        btn.Size,
			Inset:       btn.Inset,
			Button:      btn.Button,
			Description: btn.Description,
		}.Layout(gtx)
	})
}
