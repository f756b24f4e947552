package channel

import (
	"testing"

	"meanderflow/internal/vecmath"
)

func TestSmoothCurveSegmentCount(t *testing.T) {
	ch, err := New(straightLine(6), 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	segments := ch.SmoothCurve()
	if got, want := len(segments), ch.Size()-1; got != want {
		t.Errorf("SmoothCurve produced %d segments, want %d", got, want)
	}
}

func TestSmoothCurveEndpointsMatchChannel(t *testing.T) {
	ch, err := New(straightLine(6), 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	segments := ch.SmoothCurve()
	for i, seg := range segments {
		if seg.B0 != ch.Point(i) {
			t.Errorf("segment %d B0 = %v, want %v", i, seg.B0, ch.Point(i))
		}
		if seg.B3 != ch.Point(i+1) {
			t.Errorf("segment %d B3 = %v, want %v", i, seg.B3, ch.Point(i+1))
		}
	}
}

func TestCubicSegmentPointAtEndpoints(t *testing.T) {
	seg := CubicSegment{
		B0: vecmath.NewVector2(0, 0),
		B1: vecmath.NewVector2(1, 1),
		B2: vecmath.NewVector2(2, 1),
		B3: vecmath.NewVector2(3, 0),
	}
	if got := seg.Point(0); got != seg.B0 {
		t.Errorf("Point(0) = %v, want B0 %v", got, seg.B0)
	}
	if got := seg.Point(1); got != seg.B3 {
		t.Errorf("Point(1) = %v, want B3 %v", got, seg.B3)
	}
}

func TestSmoothCurveOfStraightLineStaysStraight(t *testing.T) {
	ch, err := New(straightLine(6), 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for _, seg := range ch.SmoothCurve() {
		mid := seg.Point(0.5)
		if mid.Y != 0 {
			t.Errorf("midpoint of a straight-line segment left Y=0: %v", mid)
		}
	}
}
