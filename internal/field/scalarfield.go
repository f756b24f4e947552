package field

import "meanderflow/internal/vecmath"

// ScalarField2D is a regular grid of scalar samples (e.g. terrain elevation,
// meters) over an axis-aligned domain. Values are stored row-major,
// `values[j*nx+i]` for cell (i, j).
type ScalarField2D struct {
	box        Box2D
	nx, ny     int
	values     []float64
	cellWidth  float64
	cellHeight float64
}

// NewScalarField2D builds a zero-valued field over box with resolution
// (nx, ny). Both nx and ny must be at least 2 so a cell has four corners.
func NewScalarField2D(box Box2D, nx, ny int) *ScalarField2D {
	if nx < 2 {
		nx = 2
	}
	if ny < 2 {
		ny = 2
	}
	return &ScalarField2D{
		box:        box,
		nx:         nx,
		ny:         ny,
		values:     make([]float64, nx*ny),
		cellWidth:  box.Width() / float64(nx-1),
		cellHeight: box.Height() / float64(ny-1),
	}
}

// Box returns the domain of the field.
func (f *ScalarField2D) Box() Box2D { return f.box }

// Resolution returns the sample grid dimensions.
func (f *ScalarField2D) Resolution() (nx, ny int) { return f.nx, f.ny }

// Contains reports whether p lies within the field's domain.
func (f *ScalarField2D) Contains(p vecmath.Vector2) bool {
	return f.box.Contains(p)
}

// Set stores a raw sample at grid indices (i, j).
func (f *ScalarField2D) Set(i, j int, value float64) {
	f.values[j*f.nx+i] = value
}

// At returns the raw sample at grid indices (i, j).
func (f *ScalarField2D) At(i, j int) float64 {
	return f.values[j*f.nx+i]
}

// cellCoords maps a clamped world point to fractional grid coordinates.
func (f *ScalarField2D) cellCoords(p vecmath.Vector2) (fx, fy float64) {
	fx = (p.X - f.box.Min.X) / f.cellWidth
	fy = (p.Y - f.box.Min.Y) / f.cellHeight
	return
}

// Sample bilinearly interpolates the field at world point p, clamping p into
// the domain first.
func (f *ScalarField2D) Sample(p vecmath.Vector2) float64 {
	p = f.box.Clamp(p)
	fx, fy := f.cellCoords(p)

	i0 := int(fx)
	j0 := int(fy)
	if i0 >= f.nx-1 {
		i0 = f.nx - 2
	}
	if j0 >= f.ny-1 {
		j0 = f.ny - 2
	}
	tx := fx - float64(i0)
	ty := fy - float64(j0)

	v00 := f.At(i0, j0)
	v10 := f.At(i0+1, j0)
	v01 := f.At(i0, j0+1)
	v11 := f.At(i0+1, j0+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

// Gradient returns the central-difference gradient of the field at p, one
// cell wide. p is clamped into the domain before sampling, and the step is
// shrunk near the boundary so both samples stay in-domain.
func (f *ScalarField2D) Gradient(p vecmath.Vector2) vecmath.Vector2 {
	p = f.box.Clamp(p)

	hx := f.cellWidth
	hy := f.cellHeight

	xPlus := vecmath.NewVector2(vecmath.Min(p.X+hx, f.box.Max.X), p.Y)
	xMinus := vecmath.NewVector2(vecmath.Max(p.X-hx, f.box.Min.X), p.Y)
	yPlus := vecmath.NewVector2(p.X, vecmath.Min(p.Y+hy, f.box.Max.Y))
	yMinus := vecmath.NewVector2(p.X, vecmath.Max(p.Y-hy, f.box.Min.Y))

	dx := xPlus.X - xMinus.X
	dy := yPlus.Y - yMinus.Y

	var gx, gy float64
	if dx > 0 {
		gx = (f.Sample(xPlus) - f.Sample(xMinus)) / dx
	}
	if dy > 0 {
		gy = (f.Sample(yPlus) - f.Sample(yMinus)) / dy
	}
	return vecmath.NewVector2(gx, gy)
}

// Fill sets every sample using fn(worldPoint).
func (f *ScalarField2D) Fill(fn func(p vecmath.Vector2) float64) {
	for j := 0; j < f.ny; j++ {
		y := f.box.Min.Y + float64(j)*f.cellHeight
		for i := 0; i < f.nx; i++ {
			x := f.box.Min.X + float64(i)*f.cellWidth
			f.Set(i, j, fn(vecmath.NewVector2(x, y)))
		}
	}
}
