package vis

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

// ColorGrid is the background grid line color.
var ColorGrid = color.NRGBA{R: 40, G: 45, B: 50, A: 255}

// GenColor returns a distinct display color for agent id within a fleet
// of size n, spread evenly around the hue wheel. Generalizes the
// reference implementation's literal 3-entry color table (grounded on
// genColor in the original aircraft model) to an arbitrary fleet size.
func GenColor(id core.AgentID, n int) color.NRGBA {
	if n <= 0 {
		n = 1
	}
	hue := float64(id) / float64(n) * 360.0
	r, g, b := hsvToRGB(hue, 0.75, 0.95)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rp, gp, bp float64
	switch {
	case h < 60:
		rp, gp, bp = c, x, 0
	case h < 120:
		rp, gp, bp = x, c, 0
	case h < 180:
		rp, gp, bp = 0, c, x
	case h < 240:
		rp, gp, bp = 0, x, c
	case h < 300:
		rp, gp, bp = x, 0, c
	default:
		rp, gp, bp = c, 0, x
	}
	return uint8((rp + m) * 255), uint8((gp + m) * 255), uint8((bp + m) * 255)
}

// DrawGrid draws the faint background grid lines for a W x H cell grid.
func DrawGrid(gtx layout.Context, camera *Camera, w, h int) {
	for x := 0; x <= w; x++ {
		x1, y1 := camera.WorldToScreen(float64(x), 0)
		x2, y2 := camera.WorldToScreen(float64(x), float64(h))
		drawLine(gtx, x1, y1, x2, y2, 1, ColorGrid)
	}
	for y := 0; y <= h; y++ {
		x1, y1 := camera.WorldToScreen(0, float64(y))
		x2, y2 := camera.WorldToScreen(float64(w), float64(y))
		drawLine(gtx, x1, y1, x2, y2, 1, ColorGrid)
	}
}

// DrawAircraft draws one agent as a filled circle at its current
// position, colored by id.
func DrawAircraft(gtx layout.Context, pos core.Point, col color.NRGBA, camera *Camera) {
	x, y := camera.WorldToScreen(pos.X, pos.Y)
	radius := 6 * camera.Zoom
	drawFilledCircle(gtx, x, y, radius, col)
}

// DrawDestination draws a hollow marker at an agent's destination cell.
func DrawDestination(gtx layout.Context, pos core.Point, col color.NRGBA, camera *Camera) {
	x, y := camera.WorldToScreen(pos.X, pos.Y)
	radius := 8 * camera.Zoom
	drawCircleOutline(gtx, x, y, radius, col, 2)
}

// DrawTrail draws an agent's already-traveled path as a fading line.
func DrawTrail(gtx layout.Context, history core.Path, col color.NRGBA, camera *Camera) {
	n := len(history)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		alpha := uint8(50 + float64(i)/float64(n)*150)
		fade := col
		fade.A = alpha
		x1, y1 := camera.WorldToScreen(history[i].X, history[i].Y)
		x2, y2 := camera.WorldToScreen(history[i+1].X, history[i+1].Y)
		drawLine(gtx, x1, y1, x2, y2, 2*camera.Zoom, fade)
	}
}

// DrawConflictMarker draws an X over a cell where a collision was
// detected.
func DrawConflictMarker(gtx layout.Context, pos core.Point, camera *Camera) {
	x, y := camera.WorldToScreen(pos.X, pos.Y)
	size := 10 * camera.Zoom
	col := color.NRGBA{R: 255, G: 60, B: 60, A: 220}
	drawLine(gtx, x-size, y-size, x+size, y+size, 3, col)
	drawLine(gtx, x-size, y+size, x+size, y-size, 3, col)
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))
	const segments = 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawCircleOutline(gtx layout.Context, cx, cy, radius float32, col color.NRGBA, strokeWidth float32) {
	const segments = 16
	prevX, prevY := cx+radius, cy
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		drawLine(gtx, prevX, prevY, x, y, strokeWidth, col)
		prevX, prevY = x, y
	}
}
