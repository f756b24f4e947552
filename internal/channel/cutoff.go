package channel

import "meanderflow/internal/vecmath"

// intersectionEpsilon rejects near-colinear segment pairs (parallel or
// touching-at-a-point numerical noise) per spec.md §9.
const intersectionEpsilon = 1e-9

// neckCutoffWidthFactor is the minimum arc-length separation, in channel
// widths, between two intersecting segments for the intersection to count
// as a meander neck cutoff rather than adjacent-segment noise (spec.md §4.5).
const neckCutoffWidthFactor = 4.0

// CutoffEvent describes a detected self-intersection eligible for a neck
// cutoff.
type CutoffEvent struct {
	I, J int
	Hit  vecmath.Vector2
}

// segmentIntersection solves the exact parametric intersection of segments
// (a0,a1) and (b0,b1), returning the hit point and true if they cross within
// both segments' bounds. Colinear/parallel segments (denominator below
// intersectionEpsilon) are reported as non-intersecting.
func segmentIntersection(a0, a1, b0, b1 vecmath.Vector2) (vecmath.Vector2, bool) {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)

	denom := d1.Cross(d2)
	if denom > -intersectionEpsilon && denom < intersectionEpsilon {
		return vecmath.Vector2{}, false
	}

	diff := b0.Sub(a0)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return vecmath.Vector2{}, false
	}
	return a0.Add(d1.Scale(t)), true
}

// FindFirstIntersection scans every directed segment against every later,
// non-adjacent segment (spec.md §4.5) and returns the first neck cutoff
// found, in (i, j) index order. Only intersections whose segments are
// separated by more than neckCutoffWidthFactor*Width of arc length qualify.
func (c *Channel) FindFirstIntersection() (CutoffEvent, bool) {
	n := len(c.points)
	if n < 4 {
		return CutoffEvent{}, false
	}
	arcLength := c.CurvilinearLength()
	minSeparation := neckCutoffWidthFactor * c.width

	for i := 0; i < n-2; i++ {
		for j := i + 2; j < n-1; j++ {
			if arcLength[j]-arcLength[i] <= minSeparation {
				continue
			}
			hit, ok := segmentIntersection(c.points[i], c.points[i+1], c.points[j], c.points[j+1])
			if !ok {
				continue
			}
			return CutoffEvent{I: i, J: j, Hit: hit}, true
		}
	}
	return CutoffEvent{}, false
}

// DoCutoff splits the channel at a detected neck cutoff into a shortened
// main channel and an oxbow remnant, per spec.md §4.5.
func (c *Channel) DoCutoff(ev CutoffEvent) (mainPoints, oxbowPoints []vecmath.Vector2) {
	i, j := ev.I, ev.J

	mainPoints = make([]vecmath.Vector2, 0, i+1+1+(len(c.points)-(j+1)))
	mainPoints = append(mainPoints, c.points[:i+1]...)
	mainPoints = append(mainPoints, ev.Hit)
	mainPoints = append(mainPoints, c.points[j+1:]...)

	oxbowPoints = make([]vecmath.Vector2, 0, (j-i)+2)
	oxbowPoints = append(oxbowPoints, ev.Hit)
	oxbowPoints = append(oxbowPoints, c.points[i+1:j+1]...)
	oxbowPoints = append(oxbowPoints, ev.Hit)

	return mainPoints, oxbowPoints
}
