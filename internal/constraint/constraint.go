// Package constraint implements fixed-point attractors and repellers that
// locally bias channel migration, independent of terrain or curvature.
package constraint

import "meanderflow/internal/vecmath"

// PointConstraint is a local influence source: an attractor when Strength is
// positive, a repeller when negative. Its influence decays to zero outside
// Radius following a compact cubic kernel.
type PointConstraint struct {
	Center   vecmath.Vector2
	Radius   float64
	Strength float64
}

// gradientEpsilon is the step used for the central-difference gradient of
// the intensity field, matching the 1e-2 specified for PointConstraint.
const gradientEpsilon = 1e-2

// New builds a PointConstraint. Radius must be positive; Strength may be
// negative (repeller).
func New(center vecmath.Vector2, radius, strength float64) PointConstraint {
	return PointConstraint{Center: center, Radius: radius, Strength: strength}
}

// Intensity returns the scalar influence of the constraint at world point p.
func (c PointConstraint) Intensity(p vecmath.Vector2) float64 {
	squaredDist := p.SquaredDistance(c.Center)
	squaredRadius := c.Radius * c.Radius
	return c.Strength * vecmath.CubicSmoothCompact(squaredDist, squaredRadius)
}

// Gradient returns the numeric gradient of Intensity at p via central
// differences, the directional influence a channel vertex feels.
func (c PointConstraint) Gradient(p vecmath.Vector2) vecmath.Vector2 {
	dx := vecmath.NewVector2(gradientEpsilon, 0)
	dy := vecmath.NewVector2(0, gradientEpsilon)

	gx := (c.Intensity(p.Add(dx)) - c.Intensity(p.Sub(dx))) / (2 * gradientEpsilon)
	gy := (c.Intensity(p.Add(dy)) - c.Intensity(p.Sub(dy))) / (2 * gradientEpsilon)
	return vecmath.NewVector2(gx, gy)
}

// Set aggregates several constraints and sums their directional influence.
type Set []PointConstraint

// Gradient returns the summed gradient influence of every constraint in the
// set at p.
func (s Set) Gradient(p vecmath.Vector2) vecmath.Vector2 {
	total := vecmath.Vector2{}
	for _, c := range s {
		total = total.Add(c.Gradient(p))
	}
	return total
}
