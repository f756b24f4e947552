package field

import "meanderflow/internal/vecmath"

// Grid2 caches one value of type T per ScalarField2D cell, over the same
// domain and resolution. The simulation uses Grid2[vecmath.Vector2] to cache
// the terrain gradient once per terrain load, rather than differencing the
// scalar field at every channel vertex on every step.
type Grid2[T any] struct {
	box    Box2D
	nx, ny int
	cells  []T
}

// NewGrid2 builds a Grid2 over box with resolution (nx, ny), zero-valued.
func NewGrid2[T any](box Box2D, nx, ny int) *Grid2[T] {
	if nx < 2 {
		nx = 2
	}
	if ny < 2 {
		ny = 2
	}
	return &Grid2[T]{
		box:   box,
		nx:    nx,
		ny:    ny,
		cells: make([]T, nx*ny),
	}
}

// Box returns the domain of the grid.
func (g *Grid2[T]) Box() Box2D { return g.box }

// Set stores a value at grid indices (i, j).
func (g *Grid2[T]) Set(i, j int, value T) {
	g.cells[j*g.nx+i] = value
}

// At returns the value at grid indices (i, j).
func (g *Grid2[T]) At(i, j int) T {
	return g.cells[j*g.nx+i]
}

// cellIndexFor maps a clamped world point to the nearest grid cell indices.
func (g *Grid2[T]) cellIndexFor(p vecmath.Vector2) (i, j int) {
	p = g.box.Clamp(p)
	cellWidth := g.box.Width() / float64(g.nx-1)
	cellHeight := g.box.Height() / float64(g.ny-1)

	i = int((p.X-g.box.Min.X)/cellWidth + 0.5)
	j = int((p.Y-g.box.Min.Y)/cellHeight + 0.5)
	if i < 0 {
		i = 0
	}
	if i > g.nx-1 {
		i = g.nx - 1
	}
	if j < 0 {
		j = 0
	}
	if j > g.ny-1 {
		j = g.ny - 1
	}
	return
}

// Sample returns the value of the nearest cached cell to world point p.
// Nearest-cell lookup (not bilinear) is correct here because the cached
// gradient is a per-cell constant snapshot, not a continuous field.
func (g *Grid2[T]) Sample(p vecmath.Vector2) T {
	i, j := g.cellIndexFor(p)
	return g.At(i, j)
}

// CacheGradient builds a Grid2[vecmath.Vector2] of the field's gradient,
// sampled once at every grid node, at the field's own resolution.
func CacheGradient(f *ScalarField2D) *Grid2[vecmath.Vector2] {
	nx, ny := f.Resolution()
	box := f.Box()
	grid := NewGrid2[vecmath.Vector2](box, nx, ny)

	cellWidth := box.Width() / float64(nx-1)
	cellHeight := box.Height() / float64(ny-1)

	for j := 0; j < ny; j++ {
		y := box.Min.Y + float64(j)*cellHeight
		for i := 0; i < nx; i++ {
			x := box.Min.X + float64(i)*cellWidth
			grid.Set(i, j, f.Gradient(vecmath.NewVector2(x, y)))
		}
	}
	return grid
}
