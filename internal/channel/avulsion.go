package channel

import (
	"math"

	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

// maxAvulsionSteps bounds the steepest-descent walk so a flat region without
// a reachable rejoin or boundary cannot loop forever.
const maxAvulsionSteps = 10_000

// slopeFloor is the minimum gradient magnitude steepest descent will follow;
// below it the terrain is considered locally flat and the avulsion aborts.
const slopeFloor = 1e-9

// rejoinWidthFactor is how close (in channel widths) the new path must come
// to a downstream vertex of the original channel to be considered rejoined.
const rejoinWidthFactor = 2.0

// AvulsionCandidate returns the lowest-index interior vertex whose migration
// rate magnitude meets or exceeds threshold, the spec.md §4.6 startIndex
// rule. The second return is false if no vertex qualifies.
func (c *Channel) AvulsionCandidate(threshold float64) (int, bool) {
	for i := 1; i < len(c.points)-1; i++ {
		if math.Abs(c.migrationRates[i]) >= threshold {
			return i, true
		}
	}
	return 0, false
}

// GeneratePath walks steepest descent across the terrain gradient from
// points[startIndex], stepping samplingDistance meters at a time, until
// either it comes within rejoinWidthFactor*Width of some downstream vertex
// of the original channel or it reaches the domain boundary. It reports
// false if the walk cannot proceed (immediate local minimum) before taking a
// single step — spec.md §4.6's silent AvulsionFailure.
func (c *Channel) GeneratePath(startIndex int, box field.Box2D, gradient *field.Grid2[vecmath.Vector2], samplingDistance float64) ([]vecmath.Vector2, bool) {
	start := c.points[startIndex]
	path := []vecmath.Vector2{start}

	current := start
	for step := 0; step < maxAvulsionSteps; step++ {
		slope := gradient.Sample(current)
		if slope.Length() < slopeFloor {
			if step == 0 {
				return nil, false
			}
			return path, true
		}

		descent := slope.Normalize().Scale(-1)
		next := current.Add(descent.Scale(samplingDistance))

		if !box.Contains(next) {
			path = append(path, box.Clamp(next))
			return path, true
		}

		path = append(path, next)
		current = next

		if k, ok := c.nearestDownstreamVertex(startIndex, current, rejoinWidthFactor*c.width); ok {
			path = append(path, c.points[k])
			return path, true
		}
	}
	return path, true
}

// nearestDownstreamVertex returns the lowest index k > startIndex whose
// vertex lies within maxDistance of p.
func (c *Channel) nearestDownstreamVertex(startIndex int, p vecmath.Vector2, maxDistance float64) (int, bool) {
	for k := startIndex + 1; k < len(c.points); k++ {
		if p.Distance(c.points[k]) < maxDistance {
			return k, true
		}
	}
	return 0, false
}

// DoAvulsion replaces points[startIndex:] with a freshly generated
// steepest-descent path, per spec.md §4.6. It reports false (leaving the
// channel unchanged) if no path could be generated.
func (c *Channel) DoAvulsion(startIndex int, box field.Box2D, gradient *field.Grid2[vecmath.Vector2], samplingDistance float64) ([]vecmath.Vector2, bool) {
	path, ok := c.GeneratePath(startIndex, box, gradient, samplingDistance)
	if !ok {
		return nil, false
	}

	newPoints := make([]vecmath.Vector2, 0, startIndex+len(path))
	newPoints = append(newPoints, c.points[:startIndex]...)
	newPoints = append(newPoints, path...)
	return newPoints, true
}
