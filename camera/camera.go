// Package camera provides a 2D follow camera over a bounded world.
package camera

import "github.com/pthm-cable/harpoon/vmath"

// Camera controls the viewport into the simulation world.
// The world is a square of side WorldSize centered on the origin; the camera
// center is clamped so the viewport never shows space outside it.
type Camera struct {
	// Center is the camera center in world coordinates
	Center vmath.Vec2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	WorldSize float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera centered on the world origin with 1:1 zoom.
func New(viewportW, viewportH, worldSize float64) *Camera {
	c := &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldSize: worldSize,
		MaxZoom:   4.0,
	}
	c.updateMinZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	return c
}

// updateMinZoom keeps the visible area no larger than the world.
// At zoom Z the visible area is (ViewportW/Z, ViewportH/Z).
func (c *Camera) updateMinZoom() {
	c.MinZoom = c.ViewportW / c.WorldSize
	if z := c.ViewportH / c.WorldSize; z > c.MinZoom {
		c.MinZoom = z
	}
}

// Follow centers the camera on target, clamped to the world bounds.
func (c *Camera) Follow(target vmath.Vec2) {
	c.Center = c.clampCenter(target)
}

func (c *Camera) clampCenter(p vmath.Vec2) vmath.Vec2 {
	half := c.WorldSize / 2
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	return vmath.New(
		clampAxis(p.X, -half+halfW, half-halfW),
		clampAxis(p.Y, -half+halfH, half-halfH),
	)
}

// clampAxis clamps x to [lo, hi], centering when the range is inverted.
func clampAxis(x, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return vmath.ClampFloat(x, lo, hi)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(w vmath.Vec2) vmath.Vec2 {
	d := w.Sub(c.Center).Scale(c.Zoom)
	return vmath.New(c.ViewportW/2+d.X, c.ViewportH/2+d.Y)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(s vmath.Vec2) vmath.Vec2 {
	d := vmath.New(s.X-c.ViewportW/2, s.Y-c.ViewportH/2).Scale(1 / c.Zoom)
	return c.Center.Add(d)
}

// IsVisible returns true if a circle at w with given radius could be
// visible on screen (conservative check for culling).
func (c *Camera) IsVisible(w vmath.Vec2, radius float64) bool {
	d := w.Sub(c.Center)
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return abs(d.X) <= halfW && abs(d.Y) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.updateMinZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.Center = c.clampCenter(c.Center)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = vmath.ClampFloat(zoom, c.MinZoom, c.MaxZoom)
	c.Center = c.clampCenter(c.Center)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.Center = vmath.Zero
	c.SetZoom(1.0)
}

// VisibleWorldBounds returns the world-coordinate corners of the visible area.
func (c *Camera) VisibleWorldBounds() (min, max vmath.Vec2) {
	half := vmath.New(c.ViewportW/(2*c.Zoom), c.ViewportH/(2*c.Zoom))
	return c.Center.Sub(half), c.Center.Add(half)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
