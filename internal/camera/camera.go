// Package camera provides the world-to-screen transform with follow,
// clamp, and viewport-culling helpers.
package camera

import "github.com/vkondratev/pocket-arcade/internal/geom"

// Camera maps world coordinates to screen coordinates. X and Y are the
// world position of the viewport's top-left corner; Width and Height are
// the screen dimensions; Zoom scales uniformly.
type Camera struct {
	X, Y          float64
	Width, Height float64
	Zoom          float64
}

// New creates a camera with the given viewport size and zoom 1.
func New(width, height float64) *Camera {
	return &Camera{Width: width, Height: height, Zoom: 1}
}

// viewportSize returns the world-space size of the visible region.
func (c *Camera) viewportSize() (float64, float64) {
	return c.Width / c.Zoom, c.Height / c.Zoom
}

// Follow moves the camera toward a position centered on the target by
// exponential smoothing: camera += (target - camera) * smoothing per
// call. The step is call-rate dependent, not time-normalized; callers
// pumping Follow at different frame rates converge at different speeds.
func (c *Camera) Follow(targetX, targetY, smoothing float64) {
	vw, vh := c.viewportSize()
	wantX := targetX - vw/2
	wantY := targetY - vh/2
	c.X += (wantX - c.X) * smoothing
	c.Y += (wantY - c.Y) * smoothing
}

// ClampToBounds keeps the viewport inside the world bounds. A viewport
// larger than the bounds pins to the bounds origin on that axis.
func (c *Camera) ClampToBounds(bounds geom.AABB) {
	vw, vh := c.viewportSize()
	clamped := geom.ClampAABB(geom.NewAABB(c.X, c.Y, vw, vh), bounds)
	c.X = clamped.X
	c.Y = clamped.Y
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.Zoom, (wy - c.Y) * c.Zoom
}

// ScreenToWorld converts a screen point back to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx/c.Zoom + c.X, sy/c.Zoom + c.Y
}

// IsVisible reports whether a world point lies within the viewport,
// expanded by margin world units on every side.
func (c *Camera) IsVisible(wx, wy, margin float64) bool {
	vw, vh := c.viewportSize()
	return wx >= c.X-margin && wx <= c.X+vw+margin &&
		wy >= c.Y-margin && wy <= c.Y+vh+margin
}

// IsAABBVisible reports whether a world-space box overlaps the viewport
// expanded by margin. Used for culling before items hit the render queue.
func (c *Camera) IsAABBVisible(box geom.AABB, margin float64) bool {
	vw, vh := c.viewportSize()
	view := geom.NewAABB(c.X-margin, c.Y-margin, vw+2*margin, vh+2*margin)
	return geom.CheckAABBCollision(box, view)
}
