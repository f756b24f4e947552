// Package channel implements the Channel polyline: its geometry primitives,
// the Howard-Knutson migration-rate model, terrain-aware advection,
// self-intersection cutoffs, avulsion path construction, and resampling.
//
// Grounded on original_source/Code/Include/meanders.h's Channel class for
// the operation set, and on the teacher's physics/water_flow.go for the
// collect-then-mutate, double-buffered control flow.
package channel

import (
	"fmt"
	"math"

	"meanderflow/internal/vecmath"
)

// Channel is an ordered polyline with per-vertex migration rates and a
// width/depth pair. See spec.md §3 for the invariants it maintains.
type Channel struct {
	points              []vecmath.Vector2
	localMigrationRates []float64
	migrationRates      []float64
	width               float64
	depth               float64
	frozen              bool
}

// depthFromWidth derives depth = 0.01 * width^0.6, the only depth relation
// the unified (richer) header variant uses — see spec.md §9.
func depthFromWidth(width float64) float64 {
	return 0.01 * math.Pow(width, 0.6)
}

// New builds a Channel from an initial polyline and width. points must have
// at least 4 vertices and width must be positive; both are spec.md §3/§6
// construction invariants.
func New(points []vecmath.Vector2, width float64) (*Channel, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveWidth, width)
	}

	pts := make([]vecmath.Vector2, len(points))
	copy(pts, points)

	return &Channel{
		points:              pts,
		localMigrationRates: make([]float64, len(pts)),
		migrationRates:      make([]float64, len(pts)),
		width:               width,
		depth:               depthFromWidth(width),
	}, nil
}

// Points returns a copy of the channel's vertex sequence. Callers must not
// rely on it aliasing internal state.
func (c *Channel) Points() []vecmath.Vector2 {
	out := make([]vecmath.Vector2, len(c.points))
	copy(out, c.points)
	return out
}

// Point returns the i-th vertex.
func (c *Channel) Point(i int) vecmath.Vector2 {
	return c.points[i]
}

// Size returns the number of vertices.
func (c *Channel) Size() int {
	return len(c.points)
}

// Width returns the channel width, meters.
func (c *Channel) Width() float64 {
	return c.width
}

// Depth returns the derived channel depth, meters.
func (c *Channel) Depth() float64 {
	return c.depth
}

// LocalMigrationRate returns the Ikeda local rate at vertex i, valid after
// ComputeMigrationRates.
func (c *Channel) LocalMigrationRate(i int) float64 {
	return c.localMigrationRates[i]
}

// MigrationRate returns the Howard-Knutson total rate at vertex i, valid
// after ComputeMigrationRates.
func (c *Channel) MigrationRate(i int) float64 {
	return c.migrationRates[i]
}

// Frozen reports whether the channel is an oxbow remnant excluded from rate
// computation and advection (spec.md §4.5/§9).
func (c *Channel) Frozen() bool {
	return c.frozen
}

// Freeze marks the channel as a frozen oxbow remnant.
func (c *Channel) Freeze() {
	c.frozen = true
}

// setPoints replaces the vertex sequence wholesale, used by Resample. Rate
// slices are
// resized to match but left zeroed: they are only meaningful right after
// ComputeMigrationRates, which always runs before the next Migrate.
func (c *Channel) setPoints(pts []vecmath.Vector2) {
	c.points = pts
	c.localMigrationRates = make([]float64, len(pts))
	c.migrationRates = make([]float64, len(pts))
}
