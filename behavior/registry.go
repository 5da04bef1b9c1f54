package behavior

// registry holds one DependentView per attached overlay. The action
// button and banner slots are the views updated on every animation
// frame.
type registry struct {
	views  map[OverlayID]*DependentView
	button OverlayID
	banner OverlayID
	// slot flags, since zero is a valid id
	hasButton, hasBanner bool
}

func newRegistry() *registry {
	return &registry{views: make(map[OverlayID]*DependentView)}
}

// lookup returns the view registered for id.
func (r *registry) lookup(id OverlayID) (*DependentView, bool) {
	d, ok := r.views[id]
	return d, ok
}

// attach stores a view for id and claims the per-frame slot of its kind.
func (r *registry) attach(id OverlayID, d *DependentView) {
	r.views[id] = d
	switch d.kind {
	case ActionButton:
		r.button, r.hasButton = id, true
	case Banner:
		r.banner, r.hasBanner = id, true
	}
}

// detach removes and destroys the view for id. It returns the removed
// view's kind and whether anything was removed.
func (r *registry) detach(id OverlayID) (Kind, bool) {
	d, ok := r.views[id]
	if !ok {
		return Generic, false
	}
	delete(r.views, id)
	if r.hasButton && r.button == id {
		r.hasButton = false
	}
	if r.hasBanner && r.banner == id {
		r.hasBanner = false
	}
	kind := d.kind
	d.destroy()
	return kind, true
}

// actionButton returns the view in the action button slot.
func (r *registry) actionButton() (OverlayID, *DependentView, bool) {
	if !r.hasButton {
		return 0, nil, false
	}
	return r.button, r.views[r.button], true
}

// tick updates the action button and banner views from the anchor and
// returns the ids of the overlays that need a layout pass.
func (r *registry) tick(anchor Anchor) []OverlayID {
	var updated []OverlayID
	if r.hasButton {
		if r.views[r.button].update(anchor) {
			updated = append(updated, r.button)
		}
	}
	if r.hasBanner {
		if r.views[r.banner].update(anchor) {
			updated = append(updated, r.banner)
		}
	}
	return updated
}

func (r *registry) len() int {
	return len(r.views)
}
