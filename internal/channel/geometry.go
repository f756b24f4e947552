package channel

import "meanderflow/internal/vecmath"

// curvatureEpsilon guards the discrete-curvature denominator; an underflow
// here is spec.md §7's NumericSaturation, treated as zero curvature.
const curvatureEpsilon = 1e-12

// Tangent returns the normalized local tangent at vertex i: a centered
// difference for interior vertices, a one-sided difference at the endpoints.
func (c *Channel) Tangent(i int) vecmath.Vector2 {
	n := len(c.points)
	switch {
	case n < 2:
		return vecmath.Vector2{}
	case i == 0:
		return c.points[1].Sub(c.points[0]).Normalize()
	case i == n-1:
		return c.points[n-1].Sub(c.points[n-2]).Normalize()
	default:
		return c.points[i+1].Sub(c.points[i-1]).Normalize()
	}
}

// Normal returns the left-hand perpendicular of the tangent at vertex i.
func (c *Channel) Normal(i int) vecmath.Vector2 {
	return c.Tangent(i).Orthogonal()
}

// Length returns the total polyline length: the sum of consecutive segment
// distances.
func (c *Channel) Length() float64 {
	total := 0.0
	for i := 1; i < len(c.points); i++ {
		total += c.points[i].Distance(c.points[i-1])
	}
	return total
}

// CurvilinearLength returns the cumulative arc length at each vertex,
// CurvilinearLength()[0] == 0.
func (c *Channel) CurvilinearLength() []float64 {
	s := make([]float64, len(c.points))
	for i := 1; i < len(c.points); i++ {
		s[i] = s[i-1] + c.points[i].Distance(c.points[i-1])
	}
	return s
}

// Sinuosity returns Length() / the straight-line distance between the
// endpoints. A degenerate (single-point-equivalent) channel returns 1.
func (c *Channel) Sinuosity() float64 {
	n := len(c.points)
	straight := c.points[n-1].Distance(c.points[0])
	if straight == 0 {
		return 1.0
	}
	return c.Length() / straight
}

// Curvature returns the signed discrete curvature at vertex i, computed from
// the triangle formed by its neighbors. Zero at the endpoints. A
// denominator underflow (colinear or duplicate points) also returns zero,
// per spec.md §7 NumericSaturation.
func (c *Channel) Curvature(i int) float64 {
	n := len(c.points)
	if i <= 0 || i >= n-1 {
		return 0.0
	}

	v1 := c.points[i].Sub(c.points[i-1])
	v2 := c.points[i+1].Sub(c.points[i])

	denom := v1.Length() * v2.Length() * v1.Add(v2).Length()
	if denom < curvatureEpsilon {
		return 0.0
	}
	return 2.0 * v1.Cross(v2) / denom
}

// ScaledCurvature returns Curvature(i) scaled by the channel width, the
// dimensionless curvature term the Ikeda local-rate model consumes.
func (c *Channel) ScaledCurvature(i int) float64 {
	return c.Curvature(i) * c.width
}
