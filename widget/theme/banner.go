package theme

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// BannerStyle renders a full width notification banner.
type BannerStyle struct {
	Theme *Theme
	Text  string
	// Emphasis uses the secondary palette, for warnings and errors.
	Emphasis bool
}

func Banner(th *Theme, text string) BannerStyle {
	return BannerStyle{Theme: th, Text: text}
}

func (b BannerStyle) Layout(gtx C) D {
	bg, fg := b.Theme.Background.Dark, white
	if b.Emphasis {
		bg, fg = b.Theme.Secondary.Default, black
	}
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		l := material.Body1(b.Theme.Theme, b.Text)
		l.Color = fg
		return l.Layout(gtx)
	})
	call := macro.Stop()
	fill(gtx, bg, image.Point{X: gtx.Constraints.Max.X, Y: dims.Size.Y})
	call.Add(gtx.Ops)
	return D{Size: image.Point{X: gtx.Constraints.Max.X, Y: dims.Size.Y}}
}
