package main

import (
	"fmt"
	"log"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~whereswaldon/bottomnav/behavior"
	"git.sr.ht/~whereswaldon/bottomnav/core"
	"git.sr.ht/~whereswaldon/bottomnav/icons"
	navTheme "git.sr.ht/~whereswaldon/bottomnav/widget/theme"
)

var itemInset = layout.UniformInset(unit.Dp(16))

// FeedView shows a long list of numbered rows to scroll through.
type FeedView struct {
	*navTheme.Theme
	Name  string
	Icon  *widget.Icon
	Count int
}

var _ View = &FeedView{}

func (f *FeedView) NavItem() component.NavItem {
	return component.NavItem{Name: f.Name, Icon: f.Icon}
}

func (f *FeedView) Update(gtx layout.Context) {}

func (f *FeedView) Len() int {
	return f.Count
}

func (f *FeedView) LayoutItem(gtx layout.Context, index int) layout.Dimensions {
	return itemInset.Layout(gtx, material.Body1(f.Theme.Theme, fmt.Sprintf("%s item %d", f.Name, index+1)).Layout)
}

// SettingsView edits the persisted settings that affect the navigation
// bar.
type SettingsView struct {
	core.App
	behavior *behavior.Behavior

	HideOnScroll widget.Bool
	DarkMode     widget.Bool
	Debug        widget.Bool
}

var _ View = &SettingsView{}

func NewSettingsView(app core.App, b *behavior.Behavior) *SettingsView {
	s := &SettingsView{App: app, behavior: b}
	s.HideOnScroll.Value = app.Settings().HideOnScroll()
	s.DarkMode.Value = app.Settings().DarkMode()
	s.Debug.Value = app.Settings().Debug()
	return s
}

func (s *SettingsView) NavItem() component.NavItem {
	return component.NavItem{Name: "Settings", Icon: icons.SettingsIcon}
}

func (s *SettingsView) Update(gtx layout.Context) {
	settings := s.App.Settings()
	changed := false
	if s.HideOnScroll.Changed() {
		settings.SetHideOnScroll(s.HideOnScroll.Value)
		s.behavior.SetScrollingEnabled(s.HideOnScroll.Value)
		if !s.HideOnScroll.Value {
			if err := s.behavior.SetHidden(false, true); err != nil {
				log.Printf("failed showing navigation bar: %v", err)
			}
		}
		changed = true
	}
	if s.DarkMode.Changed() {
		s.App.Theme().SetDarkMode(s.DarkMode.Value)
		changed = true
	}
	if s.Debug.Changed() {
		settings.SetDebug(s.Debug.Value)
		changed = true
	}
	if changed {
		if err := settings.Persist(); err != nil {
			log.Printf("failed saving settings: %v", err)
		}
	}
}

func (s *SettingsView) Len() int {
	return 3
}

func (s *SettingsView) LayoutItem(gtx layout.Context, index int) layout.Dimensions {
	th := s.App.Theme().Current()
	var (
		state *widget.Bool
		label string
	)
	switch index {
	case 0:
		state, label = &s.HideOnScroll, "Hide navigation bar while scrolling"
	case 1:
		state, label = &s.DarkMode, "Dark mode"
	default:
		state, label = &s.Debug, "Log navigation bar state (applies on restart)"
	}
	return itemInset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, material.Body1(th.Theme, label).Layout),
			layout.Rigid(material.Switch(th.Theme, state, label).Layout),
		)
	})
}
