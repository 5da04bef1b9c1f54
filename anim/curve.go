package anim

import "math"

// Curve maps linear progress in [0,1] onto eased progress. Every curve
// must return 0 for 0 and 1 for 1.
type Curve func(float32) float32

// Linear applies no easing.
func Linear(t float32) float32 {
	return t
}

// LinearOutSlowIn is the material deceleration curve: it starts at full
// speed and eases into its final value.
var LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)

// CubicBezier builds a timing curve through (0,0), (x1,y1), (x2,y2) and
// (1,1), the way CSS timing functions are specified. x1 and x2 must lie
// in [0,1].
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	bezier := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	slope := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}
	return func(x float32) float32 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		target := float64(x)
		// Newton's method converges quickly for well-formed curves.
		t := target
		for i := 0; i < 8; i++ {
			d := slope(t, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			err := bezier(t, x1, x2) - target
			if math.Abs(err) < 1e-7 {
				return float32(bezier(t, y1, y2))
			}
			t -= err / d
		}
		// Fall back to bisection when Newton wandered off.
		lo, hi := 0.0, 1.0
		t = target
		for i := 0; i < 32; i++ {
			x := bezier(t, x1, x2)
			if math.Abs(x-target) < 1e-7 {
				break
			}
			if x < target {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return float32(bezier(t, y1, y2))
	}
}
