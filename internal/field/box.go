// Package field implements the regular 2D terrain grid: bilinear sampling,
// central-difference gradients, and a cached vector grid used to avoid
// resampling the terrain at every vertex.
package field

import "meanderflow/internal/vecmath"

// Box2D is an axis-aligned rectangle in world coordinates (meters).
type Box2D struct {
	Min, Max vecmath.Vector2
}

// NewBox2D builds a Box2D from its corners, ensuring Min <= Max componentwise.
func NewBox2D(a, b vecmath.Vector2) Box2D {
	return Box2D{
		Min: vecmath.NewVector2(vecmath.Min(a.X, b.X), vecmath.Min(a.Y, b.Y)),
		Max: vecmath.NewVector2(vecmath.Max(a.X, b.X), vecmath.Max(a.Y, b.Y)),
	}
}

// Contains reports whether p lies within the box (inclusive).
func (b Box2D) Contains(p vecmath.Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the extent of the box along X.
func (b Box2D) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the extent of the box along Y.
func (b Box2D) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Clamp restricts p to lie within the box.
func (b Box2D) Clamp(p vecmath.Vector2) vecmath.Vector2 {
	return vecmath.NewVector2(
		vecmath.Clamp(p.X, b.Min.X, b.Max.X),
		vecmath.Clamp(p.Y, b.Min.Y, b.Max.Y),
	)
}

// Center returns the midpoint of the box.
func (b Box2D) Center() vecmath.Vector2 {
	return vecmath.Lerp2(b.Min, b.Max, 0.5)
}
