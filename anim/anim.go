/*
Package anim provides simple animation primitives
*/
package anim

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

// Normal holds state for an animation between two states that
// is not invertible.
type Normal struct {
	time.Duration
	StartTime time.Time
}

// Progress returns the current progress through the animation
// as a value in the range [0,1]. It requests another frame while
// the animation is still running.
func (n *Normal) Progress(gtx layout.Context) float32 {
	progress := n.Fraction(gtx.Now)
	if progress > 0 && progress < 1 {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return progress
}

// Fraction returns the progress through the animation at the given
// instant as a value in the range [0,1].
func (n *Normal) Fraction(now time.Time) float32 {
	if n.Duration == time.Duration(0) {
		return 0
	}
	progressDur := now.Sub(n.StartTime)
	if progressDur >= n.Duration {
		return 1
	}
	if progressDur <= 0 {
		return 0
	}
	return float32(progressDur) / float32(n.Duration)
}

func (n *Normal) Start(now time.Time) {
	n.StartTime = now
}

func (n *Normal) SetDuration(d time.Duration) {
	n.Duration = d
}

func (n *Normal) Animating(gtx layout.Context) bool {
	return n.Running(gtx.Now)
}

// Running reports whether the animation has not yet finished at now.
func (n *Normal) Running(now time.Time) bool {
	if n.Duration == 0 {
		return false
	}
	if now.After(n.StartTime.Add(n.Duration)) {
		return false
	}
	return true
}
