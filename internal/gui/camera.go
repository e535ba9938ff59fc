package gui

import "math"

const (
	minZoom = 0.5
	maxZoom = 2.0
)

// camera maps world coordinates into a viewport rectangle on screen.
type camera struct {
	// X and Y are the world coordinates at the viewport's top-left corner.
	X    float64
	Y    float64
	Zoom float64

	ViewX float64
	ViewY float64
	ViewW float64
	ViewH float64

	WorldW float64
	WorldH float64
}

func newCamera(worldW, worldH int) camera {
	return camera{Zoom: 1, WorldW: float64(worldW), WorldH: float64(worldH)}
}

func (c *camera) SetViewport(x, y, w, h float64) {
	c.ViewX, c.ViewY, c.ViewW, c.ViewH = x, y, w, h
	c.clamp()
}

func (c *camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clamp()
}

// ZoomAt changes zoom while keeping the world point under (sx, sy) fixed.
func (c *camera) ZoomAt(sx, sy, factor float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = math.Max(minZoom, math.Min(maxZoom, c.Zoom*factor))
	c.X = wx - (sx-c.ViewX)/c.Zoom
	c.Y = wy - (sy-c.ViewY)/c.Zoom
	c.clamp()
}

func (c *camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return c.ViewX + (wx-c.X)*c.Zoom, c.ViewY + (wy-c.Y)*c.Zoom
}

func (c *camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return c.X + (sx-c.ViewX)/c.Zoom, c.Y + (sy-c.ViewY)/c.Zoom
}

func (c *camera) InView(sx, sy float64) bool {
	return sx >= c.ViewX && sx < c.ViewX+c.ViewW && sy >= c.ViewY && sy < c.ViewY+c.ViewH
}

func (c *camera) clamp() {
	if c.Zoom <= 0 {
		c.Zoom = 1
	}
	visW := c.ViewW / c.Zoom
	visH := c.ViewH / c.Zoom
	c.X = clampAxis(c.X, visW, c.WorldW)
	c.Y = clampAxis(c.Y, visH, c.WorldH)
}

// clampAxis centres the world when it is smaller than the visible span.
func clampAxis(pos, visible, world float64) float64 {
	if visible >= world {
		return (world - visible) / 2
	}
	return math.Max(0, math.Min(pos, world-visible))
}
