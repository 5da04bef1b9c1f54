package behavior

import (
	"fmt"
	"log"
	"time"

	"git.sr.ht/~whereswaldon/bottomnav/anim"
)

// AnimationDuration is how long the anchor takes to show or hide.
const AnimationDuration = 100 * time.Millisecond

// Config holds the host capabilities and options of a Behavior.
type Config struct {
	// Classify decides the kind of newly attached overlays. Defaults to
	// ClassifyKinded.
	Classify Classifier
	// TouchSlop is the platform touch slop in pixels. The slop threshold
	// for scroll deltas is twice this value.
	TouchSlop int
	// AutoZOrder reports whether the host keeps the anchor above banners
	// on its own. When false, banners raise the anchor as needed.
	AutoZOrder bool
	// OnVisibilityChanged is notified after every show or hide.
	OnVisibilityChanged func(hidden, animated bool)
	// Now is the clock used to start animations. Defaults to time.Now.
	Now func() time.Time
	// Debug enables logging of every state change.
	Debug bool
}

// Behavior coordinates an anchor and its overlays.
type Behavior struct {
	anchor Anchor
	config Config

	configured  bool
	height      int
	bottomInset int
	translucent bool
	maxOffset   int

	registry *registry
	scroller *scroller
	animator *anim.Offset
}

// New returns a Behavior for anchor. Configure must be called before the
// behavior reacts to overlays or scrolling.
func New(anchor Anchor, config Config) *Behavior {
	if config.Classify == nil {
		config.Classify = ClassifyKinded
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Behavior{
		anchor:   anchor,
		config:   config,
		registry: newRegistry(),
		scroller: newScroller(config.TouchSlop),
		animator: anim.NewOffset(AnimationDuration, anim.LinearOutSlowIn),
	}
}

// Holder is implemented by host views that carry a Behavior.
type Holder interface {
	Behavior() *Behavior
}

// From returns the Behavior associated with v.
func From(v interface{}) (*Behavior, error) {
	h, ok := v.(Holder)
	if !ok {
		return nil, fmt.Errorf("%T: %w", v, ErrNoBehavior)
	}
	b := h.Behavior()
	if b == nil {
		return nil, fmt.Errorf("%T: %w", v, ErrNoBehavior)
	}
	return b, nil
}

func (b *Behavior) logf(format string, args ...interface{}) {
	if b.config.Debug {
		log.Printf("bottomnav: "+format, args...)
	}
}

// Configure sets the anchor's height and the bottom inset reserved by
// the platform below it. A positive inset switches on translucent mode.
func (b *Behavior) Configure(height, bottomInset int) error {
	if height < 0 || bottomInset < 0 {
		return fmt.Errorf("height %d, bottom inset %d: %w", height, bottomInset, ErrInvalidGeometry)
	}
	b.logf("configure(%d, %d)", height, bottomInset)
	b.height = height
	b.bottomInset = bottomInset
	b.translucent = bottomInset > 0
	b.maxOffset = height
	if b.translucent {
		b.maxOffset += bottomInset
	}
	b.configured = true
	return nil
}

// Translucent reports whether the platform reserves inset space below
// the anchor.
func (b *Behavior) Translucent() bool {
	return b.translucent
}

// MaxOffset is the translation that moves the anchor fully off screen,
// including the bottom inset in translucent mode.
func (b *Behavior) MaxOffset() int {
	return b.maxOffset
}

// Classify returns the kind the configured classifier assigns to o.
func (b *Behavior) Classify(o Overlay) Kind {
	return b.config.Classify(o)
}

// DependsOn reports whether the anchor's layout depends on o. Only
// action buttons and banners are declared dependencies; other overlays
// are coordinated only when the host attaches them explicitly.
func (b *Behavior) DependsOn(o Overlay) bool {
	return b.Classify(o) != Generic
}

// Dependent returns the DependentView registered for id.
func (b *Behavior) Dependent(id OverlayID) (*DependentView, bool) {
	return b.registry.lookup(id)
}

// Dependents returns how many overlays are attached.
func (b *Behavior) Dependents() int {
	return b.registry.len()
}

// OnDependentChanged updates the overlay with the given id from the
// anchor's current translation. The first call for an id classifies the
// overlay and captures its current margin as its baseline. The result
// reports whether the host needs to lay the overlay out again.
func (b *Behavior) OnDependentChanged(id OverlayID, o Overlay) (bool, error) {
	if !b.configured {
		return false, fmt.Errorf("dependent %d changed: %w", id, ErrNotConfigured)
	}
	d, ok := b.registry.lookup(id)
	if !ok {
		if o == nil {
			return false, fmt.Errorf("dependent %d: %w", id, ErrNilOverlay)
		}
		kind := b.Classify(o)
		d = newDependentView(kind, o, b.height, b.bottomInset, b.config.AutoZOrder)
		b.registry.attach(id, d)
		b.logf("new %s dependent %d, baseline %d", kind, id, d.baseline)
	}
	return d.update(b.anchor), nil
}

// OnDependentRemoved drops the overlay with the given id. Removing a
// banner moves a registered action button back to its resting place.
func (b *Behavior) OnDependentRemoved(id OverlayID) {
	kind, ok := b.registry.detach(id)
	if !ok {
		b.logf("remove of unknown dependent %d", id)
		return
	}
	b.logf("removed %s dependent %d", kind, id)
	if kind != Banner {
		return
	}
	if _, button, ok := b.registry.actionButton(); ok {
		button.update(b.anchor)
	}
}

// OnScrollStart resets the scroll accumulator at the start of a gesture.
func (b *Behavior) OnScrollStart() {
	b.scroller.reset()
}

// OnScrollStop resets the scroll accumulator at the end of a gesture.
func (b *Behavior) OnScrollStop() {
	b.scroller.reset()
}

// OnScrollDelta feeds a vertical scroll delta. Positive deltas scroll
// further into the content.
func (b *Behavior) OnScrollDelta(dy int, dir Direction) error {
	if !b.configured {
		return fmt.Errorf("scroll delta: %w", ErrNotConfigured)
	}
	if b.scroller.delta(dy, dir) {
		b.apply(true)
	}
	return nil
}

// OnFling feeds the vertical velocity, in pixels per second, of a fling.
func (b *Behavior) OnFling(velocityY float32, dir Direction) error {
	if !b.configured {
		return fmt.Errorf("fling: %w", ErrNotConfigured)
	}
	if b.scroller.fling(velocityY, dir) {
		b.apply(true)
	}
	return nil
}

// SetScrollingEnabled toggles whether scrolling may show or hide the
// anchor.
func (b *Behavior) SetScrollingEnabled(enabled bool) {
	b.scroller.disabled = !enabled
}

// ScrollingEnabled reports whether scrolling may show or hide the anchor.
func (b *Behavior) ScrollingEnabled() bool {
	return !b.scroller.disabled
}

// Hidden reports whether the anchor is hidden or on its way out.
func (b *Behavior) Hidden() bool {
	return b.scroller.hidden
}

// SetHidden shows or hides the anchor regardless of scrolling. Without
// animation the anchor and overlays jump to their final positions.
func (b *Behavior) SetHidden(hidden, animate bool) error {
	if !b.configured {
		return fmt.Errorf("set hidden: %w", ErrNotConfigured)
	}
	if b.scroller.hidden == hidden {
		return nil
	}
	b.scroller.hidden = hidden
	b.apply(animate)
	return nil
}

// apply moves the anchor towards the current visibility state and
// notifies the listener.
func (b *Behavior) apply(animate bool) {
	target := float32(0)
	if b.scroller.hidden {
		target = float32(b.anchor.Height())
	}
	b.logf("hidden=%v target=%g animate=%v", b.scroller.hidden, target, animate)
	if animate {
		b.animateTo(target)
	} else {
		b.animator.Cancel(b.config.Now())
		b.anchor.SetTranslation(target)
		b.registry.tick(b.anchor)
	}
	if b.config.OnVisibilityChanged != nil {
		b.config.OnVisibilityChanged(b.scroller.hidden, animate)
	}
}

// animateTo starts moving the anchor to target, superseding any running
// animation from wherever the anchor currently is.
func (b *Behavior) animateTo(target float32) {
	now := b.config.Now()
	b.animator.Cancel(now)
	b.animator.Start(now, b.anchor.Translation(), target)
}

// Animating reports whether Tick has frames left to produce.
func (b *Behavior) Animating() bool {
	return b.animator.Active()
}

// Tick advances the anchor's animation to now and repositions the action
// button and banner. It returns the overlays that need a layout pass,
// or nil when no animation is running.
func (b *Behavior) Tick(now time.Time) []OverlayID {
	if !b.animator.Active() {
		return nil
	}
	v, _ := b.animator.Step(now)
	b.anchor.SetTranslation(v)
	return b.registry.tick(b.anchor)
}
