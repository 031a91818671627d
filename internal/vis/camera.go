package vis

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

// Camera manages the view transform (pan and zoom) for the interactive
// viewer. Adapted directly from the teacher's workspace camera; the
// world it maps is now a grid of cells rather than a graph of vertices.
type Camera struct {
	OffsetX float32
	OffsetY float32
	Zoom    float32

	dragging   bool
	dragStartX float32
	dragStartY float32
	lastX      float32
	lastY      float32
}

// NewCamera creates a camera with a default view.
func NewCamera() *Camera {
	return &Camera{OffsetX: 40, OffsetY: 40, Zoom: 1.0}
}

// WorldToScreen converts world (grid) coordinates to screen pixels.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	screenX = float32(worldX)*c.Zoom + c.OffsetX
	screenY = float32(worldY)*c.Zoom + c.OffsetY
	return
}

// ScreenToWorld converts screen pixels back to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	worldX = float64((screenX - c.OffsetX) / c.Zoom)
	worldY = float64((screenY - c.OffsetY) / c.Zoom)
	return
}

// HandleEvent processes pan/zoom pointer events from the live viewer.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary) {
			c.dragging = true
		}
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.OffsetX += ev.Position.X - c.lastX
			c.OffsetY += ev.Position.Y - c.lastY
		}
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return
		}
		worldX, worldY := c.ScreenToWorld(ev.Position.X, ev.Position.Y)
		factor := float32(1.1)
		if ev.Scroll.Y > 0 {
			c.Zoom /= factor
		} else {
			c.Zoom *= factor
		}
		if c.Zoom < 0.2 {
			c.Zoom = 0.2
		}
		if c.Zoom > 20 {
			c.Zoom = 20
		}
		newX, newY := c.WorldToScreen(worldX, worldY)
		c.OffsetX += ev.Position.X - newX
		c.OffsetY += ev.Position.Y - newY
	}
}

// FitGrid sizes and centers the camera so a W x H grid fills the given
// screen dimensions with margin.
func (c *Camera) FitGrid(w, h int, screenW, screenH float32, margin float32) {
	if w <= 0 || h <= 0 {
		return
	}
	availW := screenW - 2*margin
	availH := screenH - 2*margin
	zoomX := availW / float32(w)
	zoomY := availH / float32(h)
	c.Zoom = zoomX
	if zoomY < zoomX {
		c.Zoom = zoomY
	}
	c.OffsetX = screenW/2 - float32(w)/2*c.Zoom
	c.OffsetY = screenH/2 - float32(h)/2*c.Zoom
}
