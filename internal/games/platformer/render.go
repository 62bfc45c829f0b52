package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/coindash/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar  = '▓'
	PlatformTop   = '█'
	GoalPoleChar  = '│'
	GoalFlagChar  = '▶'
	GoalFlagFaint = '▷'
	PlayerChar    = '█'
	PlayerFace    = '◉'
	FarDotChar    = '·'
	NearHillChar  = '~'
)

// coinFrames is the spin cycle: full face, edge-on, and the two half
// states between. Indexed by the coin's spin phase.
var coinFrames = [4]rune{'●', '◗', '•', '◖'}

// hudRows is the number of screen rows reserved for the HUD.
const hudRows = 1

// stretchSpeed is the |vy| above which the player renders stretched.
const stretchSpeed = 12.0

// Parallax multipliers for the two background depth bands.
const (
	farParallax  = 0.35
	nearParallax = 0.6
)

// Render draws the current game state to the screen, back to front:
// parallax background, platforms, coins, goal, player, HUD, overlays.
// Stateless: every frame redraws from scratch from current state, so the
// terminal states show a frozen final frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBackground(dst)
	g.drawPlatforms(dst)
	g.drawCoins(dst)
	g.drawGoal(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.status == core.StatusStart:
		g.drawCenteredMessage(dst, "COIN DASH", "A/D or arrows move · Space jump · Enter to start")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.status == core.StatusGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.status == core.StatusWin:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	}
}

// screenX converts a world x-coordinate to a screen column.
func (g *Game) screenX(wx float64) int {
	return int(math.Floor(wx - g.camera.X))
}

// screenY converts a world y-coordinate to a screen row.
func screenY(wy float64) int {
	return hudRows + int(math.Floor(wy))
}

// drawBackground draws two depth bands scrolling at a fraction of camera
// speed. The dot and hill placement is a fixed hash of the parallax-shifted
// column, so the pattern is stable as the camera moves.
func (g *Game) drawBackground(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	farShift := int(g.camera.X * farParallax)
	nearShift := int(g.camera.X * nearParallax)

	farBottom := hudRows + (h-hudRows)/3
	nearBottom := hudRows + (h-hudRows)*2/3

	for y := hudRows; y < farBottom; y++ {
		for x := 0; x < w; x++ {
			wx := x + farShift
			if (wx*7+y*13)%43 == 0 {
				dst.SetCell(x, y, FarDotChar, core.ColorGray)
			}
		}
	}
	for y := farBottom; y < nearBottom; y++ {
		for x := 0; x < w; x++ {
			wx := x + nearShift
			if (wx*5+y*11)%31 == 0 {
				dst.SetCell(x, y, NearHillChar, core.ColorBlue)
			}
		}
	}
}

// drawPlatforms draws each platform body with a decorative top strip.
func (g *Game) drawPlatforms(dst *core.Screen) {
	for _, p := range g.level.Platforms {
		sx := g.screenX(p.X)
		sy := screenY(p.Y)
		w := int(math.Ceil(p.W))
		h := int(math.Ceil(p.H))

		for dy := 1; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				dst.SetCell(sx+dx, sy+dy, PlatformChar, core.ColorGray)
			}
		}
		for dx := 0; dx < w; dx++ {
			dst.SetCell(sx+dx, sy, PlatformTop, core.ColorGreen)
		}
	}
}

// drawCoins draws the uncollected coins with a spin-driven squash: the
// sprite cycles full face to edge-on as the phase advances.
func (g *Game) drawCoins(dst *core.Screen) {
	for i := range g.coins {
		c := &g.coins[i]
		if c.Taken {
			continue
		}
		frame := int(c.Spin/(math.Pi/2)) % len(coinFrames)
		if frame < 0 {
			frame += len(coinFrames)
		}
		dst.SetCell(g.screenX(c.X), screenY(c.Y), coinFrames[frame], core.ColorBrightYellow)
	}
}

// drawGoal draws the flag pole plus a flag that pulses with elapsed time.
func (g *Game) drawGoal(dst *core.Screen) {
	goal := g.level.Goal
	sx := g.screenX(goal.X)
	sy := screenY(goal.Y)
	h := int(math.Ceil(goal.H))

	for dy := 0; dy < h; dy++ {
		dst.SetCell(sx, sy+dy, GoalPoleChar, core.ColorWhite)
	}

	pulse := math.Sin(g.elapsed * 3)
	flag := GoalFlagFaint
	color := core.ColorMagenta
	if pulse > 0 {
		flag = GoalFlagChar
		color = core.ColorBrightMagenta
	}
	dst.SetCell(sx+1, sy, flag, color)
	if pulse > 0.5 {
		// Peak of the pulse: the flag flies a cell wider.
		dst.SetCell(sx+2, sy, GoalFlagFaint, color)
	}
}

// drawPlayer draws the player box with a vertical squash/stretch driven by
// the current fall/rise speed: fast vertical motion renders a narrow tall
// column, grounded motion renders the full box.
func (g *Game) drawPlayer(dst *core.Screen) {
	p := &g.player
	sx := g.screenX(p.X - p.HalfW)
	sy := screenY(p.Y - p.HalfH)
	w := core.Max(1, int(math.Round(p.HalfW*2)))
	h := core.Max(1, int(math.Round(p.HalfH*2)))

	if math.Abs(p.VY) > stretchSpeed {
		cx := sx + w/2
		for dy := -1; dy < h; dy++ {
			dst.SetCell(cx, sy+dy, PlayerChar, core.ColorBrightCyan)
		}
		dst.SetCell(cx, sy, PlayerFace, core.ColorBrightWhite)
		return
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(sx+dx, sy+dy, PlayerChar, core.ColorBrightCyan)
		}
	}
	faceX := sx
	if p.Facing > 0 {
		faceX = sx + w - 1
	}
	dst.SetCell(faceX, sy, PlayerFace, core.ColorBrightWhite)
}

// drawHUD draws the score line on the reserved top row.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d   Coins: %d/%d ", g.score, g.CoinsCollected(), len(g.coins))
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" %s ", g.level.Name)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
