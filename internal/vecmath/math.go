// Package vecmath provides the 2D/3D vector arithmetic and scalar helpers
// the rest of the simulation is built on.
package vecmath

import "math"

// Clamp restricts x to [a, b].
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// ClampUnit restricts x to [0, 1].
func ClampUnit(x float64) float64 {
	return Clamp(x, 0.0, 1.0)
}

// Min returns the smaller of a and b.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CubicSmoothCompact is the compact cubic falloff kernel: (1 - x/r)^3 for
// x <= r, zero beyond. Used for point-constraint intensity.
func CubicSmoothCompact(x, r float64) float64 {
	if x > r {
		return 0.0
	}
	t := 1.0 - x/r
	return t * t * t
}

// SmoothStep is the classic cubic smoothstep on [0, 1], used to ramp the
// channel falloff envelope in from zero at the endpoints.
func SmoothStep(t float64) float64 {
	t = ClampUnit(t)
	return t * t * (3.0 - 2.0*t)
}

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1.0
	case x < 0:
		return -1.0
	default:
		return 0.0
	}
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
