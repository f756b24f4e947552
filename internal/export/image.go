// Package export implements the spec.md §6 "image export hook": a concrete
// rasterization of a simulation's channels over its domain, read-only
// against GetChannels()/GetBox(). Grounded on the teacher's use of raylib's
// image primitives for pixel manipulation, adapted here to headless,
// windowless image generation (rl.GenImageColor/rl.ImageDrawLineV/
// rl.ExportImage operate on a CPU-side Image and need no open window).
package export

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"meanderflow/internal/field"
	"meanderflow/internal/vecmath"
)

// ChannelSource is the read-only contract export needs from a simulation:
// its channels (as point sequences) and its domain. Satisfied by
// simulation.Simulation via a thin adapter in cmd/meandersim so this package
// never imports the simulation package directly.
type ChannelSource interface {
	Channels() [][]vecmath.Vector2
	Box() field.Box2D
}

var (
	background = rl.NewColor(16, 24, 32, 255)
	bankColor  = rl.NewColor(96, 180, 230, 255)
)

// OutputImage rasterizes every channel in src onto a width x height canvas
// covering src.Box(), and writes it to path as PNG.
func OutputImage(src ChannelSource, path string, width, height int32) error {
	img := rl.GenImageColor(int(width), int(height), background)
	defer rl.UnloadImage(img)

	box := src.Box()
	toPixel := func(p vecmath.Vector2) rl.Vector2 {
		u := (p.X - box.Min.X) / box.Width()
		v := (p.Y - box.Min.Y) / box.Height()
		return rl.Vector2{
			X: float32(u) * float32(width),
			Y: float32(height) - float32(v)*float32(height),
		}
	}

	for _, points := range src.Channels() {
		for i := 1; i < len(points); i++ {
			rl.ImageDrawLineV(img, toPixel(points[i-1]), toPixel(points[i]), bankColor)
		}
	}

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("export: writing image to %s failed", path)
	}
	return nil
}
