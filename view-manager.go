package main

import (
	"gioui.org/layout"

	"git.sr.ht/~whereswaldon/bottomnav/widget"
	navTheme "git.sr.ht/~whereswaldon/bottomnav/widget/theme"
)

// ViewManager switches between views from the navigation bar. Each view
// keeps its own scroll position.
type ViewManager interface {
	RegisterView(ViewID, View)
	RequestViewSwitch(ViewID)
	Current() ViewID
	NavBar() *navTheme.NavBar
	Update(gtx layout.Context)
	Layout(gtx layout.Context) layout.Dimensions
}

type viewManager struct {
	views   map[ViewID]View
	lists   map[ViewID]*layout.List
	order   []ViewID
	current ViewID
	nav     navTheme.NavBar
	coord   *widget.Coordinator
}

var _ ViewManager = &viewManager{}

// NewViewManager constructs a ViewManager whose current list is observed
// by coord.
func NewViewManager(coord *widget.Coordinator) ViewManager {
	return &viewManager{
		views: make(map[ViewID]View),
		lists: make(map[ViewID]*layout.List),
		coord: coord,
	}
}

func (vm *viewManager) RegisterView(id ViewID, view View) {
	vm.views[id] = view
	vm.lists[id] = &layout.List{Axis: layout.Vertical}
	vm.order = append(vm.order, id)
	item := view.NavItem()
	item.Tag = id
	vm.nav.AddNavItem(item)
}

func (vm *viewManager) RequestViewSwitch(id ViewID) {
	if _, ok := vm.views[id]; !ok {
		return
	}
	vm.current = id
	for i, candidate := range vm.order {
		if candidate == id {
			vm.nav.Selected = i
		}
	}
	vm.coord.List = vm.lists[id]
	// Forget the previous list's position so the switch is not seen as
	// a scroll.
	vm.coord.Scroll = widget.ScrollTracker{}
}

func (vm *viewManager) Current() ViewID {
	return vm.current
}

func (vm *viewManager) NavBar() *navTheme.NavBar {
	return &vm.nav
}

func (vm *viewManager) Update(gtx layout.Context) {
	if vm.nav.Changed() {
		if id, ok := vm.nav.CurrentTag().(ViewID); ok {
			vm.RequestViewSwitch(id)
		}
	}
	vm.views[vm.current].Update(gtx)
}

func (vm *viewManager) Layout(gtx layout.Context) layout.Dimensions {
	view := vm.views[vm.current]
	return vm.lists[vm.current].Layout(gtx, view.Len(), func(gtx layout.Context, index int) layout.Dimensions {
		dims := view.LayoutItem(gtx, index)
		vm.coord.Scroll.Measure(index, dims.Size.Y)
		return dims
	})
}
