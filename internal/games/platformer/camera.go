package platformer

import (
	"math"

	"github.com/vovakirdan/coindash/internal/core"
)

// Camera follows the player horizontally with exponential smoothing.
// Vertical position is fixed; the world is one screen tall.
type Camera struct {
	X         float64 // current horizontal offset, world cells
	smoothing float64 // convergence rate, 1/s
	viewportW float64
	worldW    float64
}

// NewCamera creates a camera for the given viewport and world widths.
func NewCamera(viewportW, worldW, smoothing float64) Camera {
	return Camera{
		smoothing: smoothing,
		viewportW: viewportW,
		worldW:    worldW,
	}
}

// maxOffset is the rightmost valid camera position.
func (c *Camera) maxOffset() float64 {
	return math.Max(0, c.worldW-c.viewportW)
}

// target returns the clamped offset that centers the viewport on x.
func (c *Camera) target(centerX float64) float64 {
	return core.ClampF(centerX-c.viewportW/2, 0, c.maxOffset())
}

// Update converges the camera toward the player center.
// The offset itself stays clamped to [0, worldW-viewportW] no matter where
// the player is.
func (c *Camera) Update(centerX, dt float64) {
	t := c.target(centerX)
	c.X += (t - c.X) * math.Min(1, dt*c.smoothing)
	c.X = core.ClampF(c.X, 0, c.maxOffset())
}

// SnapTo moves the camera to its target instantly. Used on spawn so a new
// run does not start with a pan across the level.
func (c *Camera) SnapTo(centerX float64) {
	c.X = c.target(centerX)
}

// Resize updates the viewport width after a terminal resize.
func (c *Camera) Resize(viewportW float64) {
	c.viewportW = viewportW
	c.X = core.ClampF(c.X, 0, c.maxOffset())
}
