package main

import (
	"fmt"
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	gioWidget "gioui.org/widget"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
	"git.sr.ht/~whereswaldon/bottomnav/core"
	"git.sr.ht/~whereswaldon/bottomnav/icons"
	"git.sr.ht/~whereswaldon/bottomnav/widget"
	navTheme "git.sr.ht/~whereswaldon/bottomnav/widget/theme"
)

// bannerDuration is how long the banner raised by the action button
// stays on screen.
const bannerDuration = 3 * time.Second

// Page is the top-level layout of the window: the current view, the
// navigation bar, an action button and the top banner.
type Page struct {
	core.App
	coord  *widget.Coordinator
	views  ViewManager
	fab    widget.Overlay
	banner widget.Overlay

	addButton gioWidget.Clickable
	shown     core.Banner
	added     int
}

// NewPage builds the page. The coordinator's behavior is configured from
// the settings; touchSlop is the platform touch slop in pixels.
func NewPage(app core.App, touchSlop int, debug bool) *Page {
	settings := app.Settings()
	p := &Page{App: app}
	p.coord = widget.NewCoordinator(behavior.Config{
		TouchSlop:  touchSlop,
		AutoZOrder: !settings.LegacyZOrder(),
		Debug:      debug,
	})
	p.coord.Behavior().SetScrollingEnabled(settings.HideOnScroll())

	th := app.Theme().Current()
	p.views = NewViewManager(p.coord)
	p.views.RegisterView(HomeViewID, &FeedView{Theme: th, Name: "Home", Icon: icons.HomeIcon, Count: 200})
	p.views.RegisterView(SearchViewID, &FeedView{Theme: th, Name: "Search", Icon: icons.SearchIcon, Count: 50})
	p.views.RegisterView(SettingsViewID, NewSettingsView(app, p.coord.Behavior()))
	p.views.RequestViewSwitch(HomeViewID)

	p.fab = widget.Overlay{
		Kind:      behavior.ActionButton,
		Alignment: layout.End,
		Widget: func(gtx C) D {
			return navTheme.ActionButton{
				Theme:       app.Theme().Current(),
				Button:      &p.addButton,
				Icon:        icons.AddIcon,
				Description: "Add",
			}.Layout(gtx)
		},
	}
	p.coord.Attach(&p.fab)
	p.banner = widget.Overlay{Kind: behavior.Banner}
	return p
}

// Update processes input and keeps the banner overlay in sync with the
// banner service.
func (p *Page) Update(gtx C) {
	p.views.Update(gtx)
	for p.addButton.Clicked() {
		p.added++
		p.App.Banners().Add(core.NewTimedBanner(core.Info, fmt.Sprintf("Added item %d", p.added), gtx.Now, bannerDuration))
	}
	top := p.App.Banners().Top(gtx.Now)
	if top != p.shown {
		if p.shown != nil {
			p.coord.Detach(&p.banner)
		}
		p.shown = top
		if top != nil {
			p.banner.Margin = 0
			p.banner.Widget = p.bannerWidget(top)
			p.coord.Attach(&p.banner)
		}
	}
	if p.shown != nil {
		// Check again for expiry even without input.
		op.InvalidateOp{At: gtx.Now.Add(250 * time.Millisecond)}.Add(gtx.Ops)
	}
}

func (p *Page) bannerWidget(b core.Banner) layout.Widget {
	text := "Notice"
	if tb, ok := b.(*core.TextBanner); ok {
		text = tb.Text
	}
	return func(gtx C) D {
		style := navTheme.Banner(p.App.Theme().Current(), text)
		style.Emphasis = b.BannerPriority() >= core.Warn
		return style.Layout(gtx)
	}
}

// Layout draws the page. bottomInset is the inset reserved by the
// platform below the navigation bar.
func (p *Page) Layout(gtx C, bottomInset unit.Dp) D {
	p.Update(gtx)
	th := p.App.Theme().Current()
	return p.coord.Layout(gtx, gtx.Dp(bottomInset),
		func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return p.views.Layout(gtx)
		},
		navTheme.NavBarStyle{
			NavBar:      p.views.NavBar(),
			Theme:       th,
			BottomInset: bottomInset,
		}.Layout,
	)
}
