package behavior

import "testing"

func TestDependentViewMargin(t *testing.T) {
	type tc struct {
		kind        Kind
		baseline    int
		inset       int
		translation float32
		want        int
	}
	cases := map[string]tc{
		"generic ignores translation":         {kind: Generic, baseline: 8, translation: 40, want: 64},
		"action button at rest":               {kind: ActionButton, baseline: 8, want: 64},
		"action button hidden":                {kind: ActionButton, baseline: 8, translation: 56, want: 8},
		"action button truncates translation": {kind: ActionButton, baseline: 8, translation: 20.9, want: 44},
		"translucent action button at rest":   {kind: ActionButton, baseline: 8, inset: 24, want: 64},
		"translucent action button within":    {kind: ActionButton, baseline: 8, inset: 24, translation: 56, want: 64},
		"translucent action button past":      {kind: ActionButton, baseline: 8, inset: 24, translation: 80, want: 40},
		"banner at rest":                      {kind: Banner, baseline: 8, want: 56},
		"banner hidden":                       {kind: Banner, baseline: 8, translation: 56, want: 0},
		"translucent banner inside inset":     {kind: Banner, inset: 24, translation: 20, want: 56},
		"translucent banner past inset":       {kind: Banner, inset: 24, translation: 80, want: 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			o := &fakeOverlay{kind: c.kind, margin: c.baseline}
			d := newDependentView(c.kind, o, 56, c.inset, true)
			if got := d.Margin(c.translation); got != c.want {
				t.Errorf("Margin(%g) = %d, want %d", c.translation, got, c.want)
			}
		})
	}
}

func TestActionButtonMarginNonIncreasing(t *testing.T) {
	for _, inset := range []int{0, 24} {
		o := &fakeOverlay{kind: ActionButton, margin: 8}
		d := newDependentView(ActionButton, o, 56, inset, true)
		prev := d.Margin(0)
		for tr := float32(0); tr <= 120; tr += 0.5 {
			m := d.Margin(tr)
			if m > prev {
				t.Fatalf("inset %d: margin grew from %d to %d at translation %g", inset, prev, m, tr)
			}
			prev = m
		}
	}
}

func TestDependentViewUpdateIdempotent(t *testing.T) {
	for _, kind := range []Kind{Generic, ActionButton, Banner} {
		a := &fakeAnchor{height: 56, translation: 30}
		o := &fakeOverlay{kind: kind, margin: 8, height: 48}
		d := newDependentView(kind, o, 56, 24, true)
		d.update(a)
		first := o.margin
		d.update(a)
		if o.margin != first {
			t.Errorf("%s: second update gave %d, first %d", kind, o.margin, first)
		}
		if o.layouts != 2 {
			t.Errorf("%s: expected 2 layout requests, got %d", kind, o.layouts)
		}
	}
}

func TestBannerCapturesHeightOnce(t *testing.T) {
	a := &fakeAnchor{height: 56}
	o := &fakeOverlay{kind: Banner, height: 48}
	d := newDependentView(Banner, o, 56, 0, true)
	if d.BannerHeight() != -1 {
		t.Fatalf("banner height captured before first update")
	}
	d.update(a)
	o.height = 100
	d.update(a)
	if d.BannerHeight() != 48 {
		t.Errorf("BannerHeight() = %d, want 48", d.BannerHeight())
	}
}

func TestBannerRaisesAnchorWithoutAutoZOrder(t *testing.T) {
	type tc struct {
		auto        bool
		bannerOrder int
		wantRaised  int
	}
	cases := map[string]tc{
		"banner above anchor":       {bannerOrder: 3, wantRaised: 1},
		"banner below anchor":       {bannerOrder: 0, wantRaised: 0},
		"host orders automatically": {auto: true, bannerOrder: 3, wantRaised: 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			a := &fakeAnchor{height: 56, order: 1}
			o := &fakeOverlay{kind: Banner, order: c.bannerOrder}
			d := newDependentView(Banner, o, 56, 0, c.auto)
			d.update(a)
			if a.raised != c.wantRaised {
				t.Errorf("anchor raised %d times, want %d", a.raised, c.wantRaised)
			}
		})
	}
}
