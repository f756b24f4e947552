package channel

import (
	"math"

	"meanderflow/internal/vecmath"
)

// minResampledPoints is the invariant floor: merging never drops a channel
// below 4 vertices (spec.md §3).
const minResampledPoints = 4

// Resample enforces the spec.md §4.7 spacing bounds: adjacent pairs closer
// than 0.5*samplingDistance are first merged by dropping the later vertex,
// unless that would leave fewer than 4 points; then every segment longer
// than samplingDistance is split by even subdivision into the fewest equal
// parts that fit, so no consecutive pair exceeds samplingDistance. Endpoints
// are always preserved exactly. Resampling twice in a row is a no-op.
func (c *Channel) Resample(samplingDistance float64) {
	pts := mergeShortSegments(c.points, 0.5*samplingDistance)
	pts = splitLongSegments(pts, samplingDistance)
	c.setPoints(pts)
}

// splitLongSegments subdivides every segment longer than maxDist into equal
// parts, each at most maxDist long, preserving every original vertex.
func splitLongSegments(pts []vecmath.Vector2, maxDist float64) []vecmath.Vector2 {
	if len(pts) < 2 {
		return append([]vecmath.Vector2(nil), pts...)
	}

	out := make([]vecmath.Vector2, 0, len(pts))
	out = append(out, pts[0])

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := a.Distance(b)
		if d > maxDist {
			parts := int(math.Ceil(d / maxDist))
			for k := 1; k < parts; k++ {
				t := float64(k) / float64(parts)
				out = append(out, vecmath.Lerp2(a, b, t))
			}
		}
		out = append(out, b)
	}
	return out
}

// mergeShortSegments drops interior vertices closer than minDist to their
// predecessor, always keeping the first and last vertex, and never dropping
// the point count below minResampledPoints.
func mergeShortSegments(pts []vecmath.Vector2, minDist float64) []vecmath.Vector2 {
	if len(pts) <= minResampledPoints {
		return append([]vecmath.Vector2(nil), pts...)
	}

	out := make([]vecmath.Vector2, 0, len(pts))
	out = append(out, pts[0])

	for i := 1; i < len(pts); i++ {
		isLast := i == len(pts)-1
		remaining := len(pts) - i

		if !isLast &&
			out[len(out)-1].Distance(pts[i]) < minDist &&
			len(out)+remaining > minResampledPoints {
			continue
		}
		out = append(out, pts[i])
	}
	return out
}
