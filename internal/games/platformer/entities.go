package platformer

import "github.com/vovakirdan/coindash/internal/core"

// Player is the single controllable character. Position is the center of
// the collision box; half-extents define the box size. Mutated once per
// simulation tick by the physics step.
type Player struct {
	X, Y     float64 // center position, world cells
	VX, VY   float64 // velocity, cells/s
	HalfW    float64
	HalfH    float64
	Facing   int  // +1 right, -1 left
	Grounded bool // vertical motion arrested by landing this tick
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.Box {
	return core.NewBox(p.X-p.HalfW, p.Y-p.HalfH, p.HalfW*2, p.HalfH*2)
}

// Coin is a collectible. Taken flips to true at most once per run; Spin is
// the animation phase driving the squash effect in the renderer.
type Coin struct {
	X, Y  float64
	Taken bool
	Spin  float64
}
