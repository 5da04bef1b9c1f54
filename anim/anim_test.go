package anim

import (
	"testing"
	"time"
)

func TestCurveEndpoints(t *testing.T) {
	for name, curve := range map[string]Curve{
		"linear":             Linear,
		"linear out slow in": LinearOutSlowIn,
		"ease":               CubicBezier(0.25, 0.1, 0.25, 1),
	} {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %g", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %g", name, got)
		}
	}
}

func TestLinearOutSlowInDecelerates(t *testing.T) {
	prev := float32(0)
	prevStep := float32(1)
	for i := 1; i <= 10; i++ {
		v := LinearOutSlowIn(float32(i) / 10)
		if v < prev {
			t.Fatalf("curve decreased at %d: %g < %g", i, v, prev)
		}
		step := v - prev
		if step > prevStep+1e-3 {
			t.Fatalf("curve accelerated at %d: step %g after %g", i, step, prevStep)
		}
		prev, prevStep = v, step
	}
	if mid := LinearOutSlowIn(0.5); mid <= 0.5 {
		t.Errorf("LinearOutSlowIn(0.5) = %g, expected ease-out above 0.5", mid)
	}
}

func TestNormalFraction(t *testing.T) {
	start := time.Now()
	var n Normal
	if n.Fraction(start) != 0 || n.Running(start) {
		t.Fatalf("zero duration animation should be idle")
	}
	n.SetDuration(100 * time.Millisecond)
	n.Start(start)
	if got := n.Fraction(start.Add(25 * time.Millisecond)); got != 0.25 {
		t.Errorf("Fraction = %g, want 0.25", got)
	}
	if got := n.Fraction(start.Add(time.Second)); got != 1 {
		t.Errorf("Fraction after end = %g, want 1", got)
	}
	if n.Running(start.Add(101 * time.Millisecond)) {
		t.Errorf("still running after duration")
	}
}

func TestOffsetReachesTarget(t *testing.T) {
	start := time.Now()
	o := NewOffset(100*time.Millisecond, LinearOutSlowIn)
	o.Start(start, 0, 56)
	if v, running := o.Value(start); v != 0 || !running {
		t.Fatalf("first value = %g, %v", v, running)
	}
	v, running := o.Step(start.Add(100 * time.Millisecond))
	if v != 56 || running || o.Active() {
		t.Errorf("final value = %g running=%v active=%v", v, running, o.Active())
	}
}

func TestOffsetCancelSupersedes(t *testing.T) {
	start := time.Now()
	o := NewOffset(100*time.Millisecond, Linear)
	o.Start(start, 0, 100)
	at := start.Add(40 * time.Millisecond)
	v := o.Cancel(at)
	if v != 40 {
		t.Fatalf("Cancel = %g, want 40", v)
	}
	if o.Active() {
		t.Fatalf("active after cancel")
	}
	o.Start(at, v, 0)
	if got, _ := o.Value(at.Add(50 * time.Millisecond)); got != 20 {
		t.Errorf("Value = %g, want 20", got)
	}
	if o.Target() != 0 {
		t.Errorf("Target = %g, want 0", o.Target())
	}
}

func TestOffsetZeroDurationJumps(t *testing.T) {
	now := time.Now()
	var o Offset
	o.Start(now, 3, 9)
	if v, running := o.Value(now); v != 9 || running {
		t.Errorf("Value = %g, %v, want 9 false", v, running)
	}
}
