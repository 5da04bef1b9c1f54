package behavior

import "math"

// DependentView computes and applies the bottom margin of one overlay
// from the anchor's translation. The variant is fixed by its Kind.
type DependentView struct {
	kind    Kind
	overlay Overlay
	// margin the overlay was laid out with when first seen
	baseline    int
	height      int
	bottomInset int
	// zorder is false on hosts that need the anchor raised manually.
	zorder       bool
	bannerHeight int
}

func newDependentView(kind Kind, o Overlay, height, bottomInset int, autoZOrder bool) *DependentView {
	return &DependentView{
		kind:         kind,
		overlay:      o,
		baseline:     o.BottomMargin(),
		height:       height,
		bottomInset:  bottomInset,
		zorder:       autoZOrder,
		bannerHeight: -1,
	}
}

// Kind reports the variant of the view.
func (d *DependentView) Kind() Kind {
	return d.kind
}

// Baseline returns the overlay's margin captured when it was first seen.
func (d *DependentView) Baseline() int {
	return d.baseline
}

// BannerHeight returns the banner height captured on its first update,
// or -1.
func (d *DependentView) BannerHeight() int {
	return d.bannerHeight
}

// Margin computes the bottom margin for the given anchor translation
// without applying it.
func (d *DependentView) Margin(translation float32) int {
	switch d.kind {
	case ActionButton:
		if d.bottomInset > 0 {
			t := math.Max(0, float64(translation)-float64(d.height))
			return int(float64(d.baseline+d.height) - t)
		}
		return d.baseline + d.height - int(translation)
	case Banner:
		maxScroll := math.Max(0, float64(translation)-float64(d.bottomInset))
		return int(float64(d.height) - maxScroll)
	default:
		return d.baseline + d.height
	}
}

// update applies the margin for the anchor's translation to the overlay.
// The result tells the host whether a layout pass is needed.
func (d *DependentView) update(anchor Anchor) bool {
	if d.kind == Banner {
		if !d.zorder && d.overlay.Order() > anchor.Order() {
			anchor.BringToFront()
		}
		if d.bannerHeight == -1 {
			d.bannerHeight = d.overlay.Height()
		}
	}
	d.overlay.SetBottomMargin(d.Margin(anchor.Translation()))
	d.overlay.RequestLayout()
	return true
}

// destroy releases the view. None of the variants hold resources yet.
func (d *DependentView) destroy() {
	d.overlay = nil
}
