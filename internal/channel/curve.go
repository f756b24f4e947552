package channel

import "meanderflow/internal/vecmath"

// CubicSegment is one cubic Bezier span of a channel's smoothed
// representation: B0 and B3 lie on the channel, B1/B2 are the interior
// control points.
type CubicSegment struct {
	B0, B1, B2, B3 vecmath.Vector2
}

// Point evaluates the segment at parameter t in [0, 1].
func (s CubicSegment) Point(t float64) vecmath.Vector2 {
	u := 1 - t
	p := s.B0.Scale(u * u * u)
	p = p.Add(s.B1.Scale(3 * u * u * t))
	p = p.Add(s.B2.Scale(3 * u * t * t))
	p = p.Add(s.B3.Scale(t * t * t))
	return p
}

// SmoothCurve returns a piecewise-cubic Catmull-Rom-through-Bezier
// representation of the channel's polyline, one segment per consecutive
// vertex pair. This is the Go-idiomatic stand-in for meanders.h's
// ToCubicCurve() contract (spec.md §1 excludes the surrounding repository's
// curve-export plumbing, but a channel handing back a smooth curve of
// itself is cheap and useful to any downstream renderer).
func (c *Channel) SmoothCurve() []CubicSegment {
	n := len(c.points)
	if n < 2 {
		return nil
	}

	segments := make([]CubicSegment, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0 := c.points[maxInt(i-1, 0)]
		p1 := c.points[i]
		p2 := c.points[i+1]
		p3 := c.points[minInt(i+2, n-1)]

		b1 := p1.Add(p2.Sub(p0).Scale(1.0 / 6.0))
		b2 := p2.Sub(p3.Sub(p1).Scale(1.0 / 6.0))

		segments = append(segments, CubicSegment{B0: p1, B1: b1, B2: b2, B3: p2})
	}
	return segments
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
