package liveserver

import (
	"testing"

	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

func TestNewFrameFlattensChannels(t *testing.T) {
	box := field.NewBox2D(vecmath.NewVector2(0, 0), vecmath.NewVector2(100, 100))
	channels := [][]vecmath.Vector2{
		{vecmath.NewVector2(1, 2), vecmath.NewVector2(3, 4)},
		{vecmath.NewVector2(5, 6)},
	}

	frame := NewFrame(12, box, channels)

	if frame.Step != 12 {
		t.Errorf("Step = %d, want 12", frame.Step)
	}
	if frame.Box != ([2][2]float64{{0, 0}, {100, 100}}) {
		t.Errorf("Box = %v, want {{0 0} {100 100}}", frame.Box)
	}
	if len(frame.Channels) != 2 {
		t.Fatalf("got %d flattened channels, want 2", len(frame.Channels))
	}
	if got := frame.Channels[0]; len(got) != 4 || got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 4 {
		t.Errorf("first channel flattened = %v, want [1 2 3 4]", got)
	}
	if got := frame.Channels[1]; len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Errorf("second channel flattened = %v, want [5 6]", got)
	}
}

func TestNewServerHasNoClients(t *testing.T) {
	s := NewServer()
	// Broadcasting with no connected clients should not panic.
	s.Broadcast(NewFrame(0, field.Box2D{}, nil))
}
