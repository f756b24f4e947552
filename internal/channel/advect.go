package channel

import (
	"math"

	"meanderflow/internal/config"
	"meanderflow/internal/constraint"
	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

// Migrate advects every interior vertex laterally per spec.md §4.4, reading
// positions and rates from the pre-step snapshot (c.points,
// c.migrationRates) and writing into a fresh buffer so no vertex's update
// depends on another vertex's update within the same call — the
// double-buffering spec.md §4.4/§9 requires. Endpoints are left untouched.
// A vertex whose candidate position leaves the domain is pinned to its
// pre-step position.
func (c *Channel) Migrate(p config.Parameters, box field.Box2D, gradient *field.Grid2[vecmath.Vector2], constraints constraint.Set) {
	n := len(c.points)
	next := make([]vecmath.Vector2, n)
	copy(next, c.points)

	for i := 1; i < n-1; i++ {
		rate := c.migrationRates[i]

		direction := c.Normal(i).Scale(vecmath.Sign(rate))

		slope := gradient.Sample(c.points[i])
		if mag := slope.Length(); mag > p.MaxSlope {
			slope = slope.Normalize().Scale(p.MaxSlope)
		}
		direction = direction.Sub(slope.Scale(p.Kv))

		direction = direction.Add(constraints.Gradient(c.points[i]))

		if length := direction.Length(); length > 0 {
			direction = direction.Scale(1.0 / length)
		}

		// direction already carries the rate's sign; scale by its magnitude.
		delta := direction.Scale(p.K1 * math.Abs(rate) * p.Dt)
		candidate := c.points[i].Add(delta)

		if box.Contains(candidate) {
			next[i] = candidate
		}
		// else: leave next[i] == c.points[i], pinned for this step.
	}

	c.points = next
}
