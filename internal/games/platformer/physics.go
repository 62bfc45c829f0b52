package platformer

import (
	"math"

	"github.com/vovakirdan/coindash/internal/core"
)

// MaxDelta bounds a single integration step to 1/30 s. A stalled host
// produces one clamped step instead of an oversized one that would tunnel
// the player through platforms.
const MaxDelta = 1.0 / 30.0

// velocities below this are treated as stopped after drag decay
const restSpeed = 0.01

// stepPlayer runs one physics tick: input resolution, jump, gravity, then
// axis-separated collision resolution (X fully, then Y from the X-resolved
// position). Not a swept test; corner contacts at high speed resolve one
// axis at a time, with MaxDelta bounding the worst case.
func (g *Game) stepPlayer(in core.InputFrame, dt float64) {
	p := &g.player
	phys := g.tun.Physics

	// Horizontal intent resolves to a fixed speed; simultaneous
	// left+right resolves right. No input decays toward zero.
	switch {
	case in.Right:
		p.VX = phys.MoveSpeed
		p.Facing = 1
	case in.Left:
		p.VX = -phys.MoveSpeed
		p.Facing = -1
	default:
		p.VX -= p.VX * math.Min(1, phys.Drag*dt)
		if math.Abs(p.VX) < restSpeed {
			p.VX = 0
		}
	}

	// Jump only on the rising edge of the intent while grounded.
	// Holding jump, or pressing it mid-air, does nothing.
	jumpEdge := in.Jump && !g.prevJump
	g.prevJump = in.Jump
	if jumpEdge && p.Grounded {
		p.VY = phys.JumpImpulse
		p.Grounded = false
		g.emit(core.EventJump)
	}

	p.VY += phys.Gravity * dt
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}

	g.moveX(dt)
	g.moveY(dt)
}

// moveX advances the horizontal position and clamps against platform edges
// in the direction of travel, then against the world bounds.
func (g *Game) moveX(dt float64) {
	p := &g.player
	p.X += p.VX * dt

	for _, plat := range g.level.Platforms {
		if !p.Bounds().Overlaps(plat) {
			continue
		}
		if p.VX > 0 {
			p.X = plat.X - p.HalfW
		} else if p.VX < 0 {
			p.X = plat.Right() + p.HalfW
		}
		p.VX = 0
	}

	margin := g.tun.World.EdgeMargin
	p.X = core.ClampF(p.X, margin+p.HalfW, g.level.World.Width-margin-p.HalfW)
}

// moveY advances the vertical position from the X-resolved one. Downward
// overlap snaps to the platform top and grounds the player; upward overlap
// snaps below the platform (head bump). Either way vertical velocity stops.
func (g *Game) moveY(dt float64) {
	p := &g.player
	p.Grounded = false
	p.Y += p.VY * dt

	for _, plat := range g.level.Platforms {
		if !p.Bounds().Overlaps(plat) {
			continue
		}
		if p.VY > 0 {
			p.Y = plat.Y - p.HalfH
			p.VY = 0
			p.Grounded = true
		} else if p.VY < 0 {
			p.Y = plat.Bottom() + p.HalfH
			p.VY = 0
		}
	}
}

// collectCoins takes every untaken coin whose center is within pickup
// distance of the player center. A coin flips to taken at most once per
// run; each pickup adds the fixed coin value to the score.
func (g *Game) collectCoins() {
	p := &g.player
	for i := range g.coins {
		c := &g.coins[i]
		if c.Taken {
			continue
		}
		if core.Dist(p.X, p.Y, c.X, c.Y) < g.tun.Coins.PickupRadius {
			c.Taken = true
			g.score += g.tun.Coins.Value
			g.emit(core.EventCoin)
		}
	}
}

// checkGoal transitions to the win state on goal overlap. The transition
// happens at most once because the win state freezes the simulation.
func (g *Game) checkGoal() {
	if g.player.Bounds().Overlaps(g.level.Goal) {
		g.status = core.StatusWin
		g.emit(core.EventWin)
	}
}

// checkFall ends the run when the player drops below the world plus the
// configured margin. Falling off is the normal game-over condition, not
// an error.
func (g *Game) checkFall() {
	if g.player.Y-g.player.HalfH > g.level.World.Height+g.tun.World.FallMargin {
		g.status = core.StatusGameOver
	}
}
