package channel

import (
	"testing"

	"meanderflow/internal/config"
	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

func TestAvulsionCandidateFindsLowestQualifyingIndex(t *testing.T) {
	ch, err := New(straightLine(10), 50)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ch.migrationRates[3] = 1.0
	ch.migrationRates[5] = 1.0

	idx, ok := ch.AvulsionCandidate(0.5)
	if !ok {
		t.Fatal("expected a qualifying candidate")
	}
	if idx != 3 {
		t.Errorf("AvulsionCandidate = %d, want 3 (the lowest qualifying index)", idx)
	}
}

func TestAvulsionCandidateNoneBelowThreshold(t *testing.T) {
	ch, err := New(straightLine(10), 50)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, ok := ch.AvulsionCandidate(config.Default().TAvulsion); ok {
		t.Error("a quiescent channel should have no avulsion candidate")
	}
}

func TestGeneratePathFailsOnFlatTerrain(t *testing.T) {
	ch, err := New(straightLine(10), 50)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	box := field.NewBox2D(vecmath.NewVector2(-1000, -1000), vecmath.NewVector2(1000, 1000))
	gradient := flatGradient(box)

	if _, ok := ch.GeneratePath(3, box, gradient, 50); ok {
		t.Error("flat terrain should make a descent path impossible from the first step")
	}
}

func TestGeneratePathDescendsOnSlope(t *testing.T) {
	ch, err := New(straightLine(10), 50)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	box := field.NewBox2D(vecmath.NewVector2(-1000, -1000), vecmath.NewVector2(1000, 1000))
	terrain := field.NewScalarField2D(box, 20, 20)
	terrain.Fill(func(p vecmath.Vector2) float64 { return p.Y })
	gradient := field.CacheGradient(terrain)

	path, ok := ch.GeneratePath(3, box, gradient, 50)
	if !ok {
		t.Fatal("expected a descent path on a sloped terrain")
	}
	if len(path) < 2 {
		t.Fatalf("expected more than the starting point, got %d", len(path))
	}
	if path[1].Y >= path[0].Y {
		t.Errorf("first path segment should descend in Y (gradient of Y-sloped terrain points toward +Y): start=%v next=%v", path[0], path[1])
	}
}

func TestDoAvulsionReplacesTail(t *testing.T) {
	ch, err := New(straightLine(10), 50)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	box := field.NewBox2D(vecmath.NewVector2(-1000, -1000), vecmath.NewVector2(1000, 1000))
	terrain := field.NewScalarField2D(box, 20, 20)
	terrain.Fill(func(p vecmath.Vector2) float64 { return p.Y })
	gradient := field.CacheGradient(terrain)

	newPoints, ok := ch.DoAvulsion(3, box, gradient, 50)
	if !ok {
		t.Fatal("expected avulsion to succeed on sloped terrain")
	}
	for i := 0; i < 3; i++ {
		if newPoints[i] != ch.Point(i) {
			t.Errorf("vertex %d before startIndex should be preserved: %v != %v", i, newPoints[i], ch.Point(i))
		}
	}
}
