package game

// Camera tracks the viewport position for scrolling the world.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)

	ViewW, ViewH   float64 // Viewport size
	WorldW, WorldH float64 // World size the camera is clamped to
}

// Follow centers the camera on a world position, clamped to the world
func (c *Camera) Follow(x, y float64) {
	c.X = x - c.ViewW/2
	c.Y = y - c.ViewH/2

	if c.X > c.WorldW-c.ViewW {
		c.X = c.WorldW - c.ViewW
	}
	if c.Y > c.WorldH-c.ViewH {
		c.Y = c.WorldH - c.ViewH
	}
	// A world smaller than the view is pinned to the top-left
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
}

// ScreenToWorld converts a screen position to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}

// WorldToScreen converts a world position to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}
