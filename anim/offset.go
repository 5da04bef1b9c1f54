package anim

import "time"

// Offset tweens a single scalar, such as a vertical translation, from
// one value to another. Starting a new tween replaces the running one.
// The zero value is idle and uses Linear easing.
type Offset struct {
	Normal
	Curve    Curve
	from, to float32
	active   bool
}

// NewOffset returns an idle Offset with the given duration and curve.
func NewOffset(d time.Duration, curve Curve) *Offset {
	o := &Offset{Curve: curve}
	o.SetDuration(d)
	return o
}

// Start begins tweening from from to to at now, superseding any tween
// already in flight.
func (o *Offset) Start(now time.Time, from, to float32) {
	o.Normal.Start(now)
	o.from, o.to = from, to
	o.active = true
}

// Cancel stops the running tween and returns the value it had reached
// at now. Cancelling an idle Offset returns its last target.
func (o *Offset) Cancel(now time.Time) float32 {
	if !o.active {
		return o.to
	}
	v, _ := o.Value(now)
	o.active = false
	return v
}

// Active reports whether a tween was started and has not yet produced
// its final value.
func (o *Offset) Active() bool {
	return o.active
}

// Target returns the value the current or last tween ends on.
func (o *Offset) Target() float32 {
	return o.to
}

// Value returns the interpolated value at now and whether the tween is
// still running afterwards. The final value is exactly the target.
func (o *Offset) Value(now time.Time) (float32, bool) {
	if !o.active {
		return o.to, false
	}
	fraction := o.Fraction(now)
	if o.Duration == 0 || fraction >= 1 {
		return o.to, false
	}
	curve := o.Curve
	if curve == nil {
		curve = Linear
	}
	return o.from + (o.to-o.from)*curve(fraction), true
}

// Step is Value for per-frame drivers: once the final value has been
// returned the tween becomes idle.
func (o *Offset) Step(now time.Time) (float32, bool) {
	v, running := o.Value(now)
	if !running {
		o.active = false
	}
	return v, running
}
