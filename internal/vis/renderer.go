// Package vis renders simulation ticks: a headless stdlib rasterizer for
// automated per-tick frame capture (spec.md §6's Renderer contract, used
// by the benchmark driver and by tests that want to assert on pixels
// without a live window), and gioui op-based drawing primitives for an
// optional interactive viewer (cmd/mapfhetvis). gioui's GPU-backed app
// window cannot run headless in a batch-capture loop, so the automated
// path below draws directly into a stdlib image.RGBA instead — the one
// legitimate stdlib carve-out in this package.
package vis

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

// CellPixels is the on-screen size of one grid cell in a rendered frame.
const CellPixels = 24

// Renderer is the spec.md §6 external interface: one raster image per
// simulation tick.
type Renderer interface {
	RenderTick(fleet *core.Fleet) image.Image
}

// FrameRenderer is the stdlib-backed headless Renderer.
type FrameRenderer struct{}

// NewFrameRenderer builds a FrameRenderer.
func NewFrameRenderer() *FrameRenderer { return &FrameRenderer{} }

// RenderTick draws the grid, every agent's history trail, current
// position, and destination marker into a fresh RGBA image.
func (r *FrameRenderer) RenderTick(fleet *core.Fleet) image.Image {
	w := (fleet.Grid.W + 2) * CellPixels
	h := (fleet.Grid.H + 2) * CellPixels
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.NRGBA{R: 25, G: 28, B: 32, A: 255}}, image.Point{}, draw.Src)

	for x := 0; x <= fleet.Grid.W; x++ {
		drawVerticalLine(img, cellToPixel(x), cellToPixel(0), cellToPixel(fleet.Grid.H), ColorGrid)
	}
	for y := 0; y <= fleet.Grid.H; y++ {
		drawHorizontalLine(img, cellToPixel(0), cellToPixel(fleet.Grid.W), cellToPixel(y), ColorGrid)
	}

	n := len(fleet.Agents)
	for _, a := range fleet.Agents {
		col := GenColor(a.ID, n)
		drawTrailPixels(img, a.PathHistory, col)
		drawDestMarkerPixels(img, a.Destination, col)
		drawCirclePixels(img, cellToPixel(int(roundPx(a.X))), cellToPixel(int(roundPx(a.Y))), 8, col)
	}

	return img
}

func roundPx(v float64) float64 {
	if v >= 0 {
		return v + 0.5
	}
	return v - 0.5
}

func cellToPixel(cell int) int { return (cell + 1) * CellPixels }

func pointToPixel(p core.Point) (int, int) {
	return cellToPixel(0) + int(p.X*CellPixels), cellToPixel(0) + int(p.Y*CellPixels)
}

func drawVerticalLine(img *image.RGBA, x, y1, y2 int, col color.NRGBA) {
	for y := y1; y <= y2; y++ {
		img.SetNRGBA(x, y, col)
	}
}

func drawHorizontalLine(img *image.RGBA, x1, x2, y int, col color.NRGBA) {
	for x := x1; x <= x2; x++ {
		img.SetNRGBA(x, y, col)
	}
}

func drawCirclePixels(img *image.RGBA, cx, cy, radius int, col color.NRGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}

func drawTrailPixels(img *image.RGBA, history core.Path, col color.NRGBA) {
	for _, p := range history {
		x, y := pointToPixel(p)
		fade := col
		fade.A = 120
		drawCirclePixels(img, x, y, 2, fade)
	}
}

func drawDestMarkerPixels(img *image.RGBA, dest core.Point, col color.NRGBA) {
	x, y := pointToPixel(dest)
	for r := 6; r <= 8; r++ {
		drawCirclePixels(img, x, y, r, col)
	}
}
