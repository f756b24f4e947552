package channel

import (
	"testing"

	"meanderflow/internal/vecmath"
)

func TestResampleSplitsLongSegments(t *testing.T) {
	pts := []vecmath.Vector2{
		vecmath.NewVector2(0, 0),
		vecmath.NewVector2(1000, 0),
		vecmath.NewVector2(2000, 0),
		vecmath.NewVector2(3000, 0),
	}
	ch, err := New(pts, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ch.Resample(100)

	for i := 1; i < ch.Size(); i++ {
		if d := ch.Point(i).Distance(ch.Point(i - 1)); d > 100+1e-6 {
			t.Errorf("segment %d has length %g, exceeds sampling distance 100", i, d)
		}
	}
}

func TestResamplePreservesEndpoints(t *testing.T) {
	pts := []vecmath.Vector2{
		vecmath.NewVector2(0, 0),
		vecmath.NewVector2(1000, 0),
		vecmath.NewVector2(2000, 0),
		vecmath.NewVector2(3000, 0),
	}
	ch, err := New(pts, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	first, last := ch.Point(0), ch.Point(ch.Size()-1)
	ch.Resample(100)

	if ch.Point(0) != first {
		t.Errorf("Resample moved the first endpoint: %v -> %v", first, ch.Point(0))
	}
	if ch.Point(ch.Size()-1) != last {
		t.Errorf("Resample moved the last endpoint: %v -> %v", last, ch.Point(ch.Size()-1))
	}
}

func TestResampleMergesShortSegments(t *testing.T) {
	pts := []vecmath.Vector2{
		vecmath.NewVector2(0, 0),
		vecmath.NewVector2(100, 0),
		vecmath.NewVector2(101, 0), // much closer than sampling distance
		vecmath.NewVector2(200, 0),
		vecmath.NewVector2(300, 0),
		vecmath.NewVector2(400, 0),
	}
	ch, err := New(pts, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	before := ch.Size()
	ch.Resample(100)

	if ch.Size() >= before {
		t.Errorf("expected the close pair to be merged away: before=%d after=%d", before, ch.Size())
	}
}

func TestResampleNeverDropsBelowFour(t *testing.T) {
	pts := []vecmath.Vector2{
		vecmath.NewVector2(0, 0),
		vecmath.NewVector2(0.1, 0),
		vecmath.NewVector2(0.2, 0),
		vecmath.NewVector2(0.3, 0),
	}
	ch, err := New(pts, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ch.Resample(100)

	if ch.Size() < 4 {
		t.Errorf("Resample dropped below the 4-point floor: %d", ch.Size())
	}
}

func TestResampleIsIdempotent(t *testing.T) {
	pts := []vecmath.Vector2{
		vecmath.NewVector2(0, 0),
		vecmath.NewVector2(1000, 0),
		vecmath.NewVector2(2000, 0),
		vecmath.NewVector2(3000, 0),
	}
	ch, err := New(pts, 10)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ch.Resample(100)
	firstPass := ch.Points()
	ch.Resample(100)
	secondPass := ch.Points()

	if len(firstPass) != len(secondPass) {
		t.Fatalf("resampling twice changed point count: %d -> %d", len(firstPass), len(secondPass))
	}
	for i := range firstPass {
		if firstPass[i].Distance(secondPass[i]) > 1e-6 {
			t.Errorf("resampling twice moved vertex %d: %v -> %v", i, firstPass[i], secondPass[i])
		}
	}
}
