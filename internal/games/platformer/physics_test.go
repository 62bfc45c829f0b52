package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/coindash/internal/core"
)

func TestLandingSnapsToPlatformTop(t *testing.T) {
	g := newPlayingGame(t)

	// Above the first ground platform, falling.
	plat := g.level.Platforms[0]
	g.player.X = plat.CenterX()
	g.player.Y = plat.Y - 4
	g.player.VY = 10
	g.player.Grounded = false

	for i := 0; i < 120 && !g.player.Grounded; i++ {
		g.Step(core.InputFrame{}, testDt)
	}

	if !g.player.Grounded {
		t.Fatal("player should have landed")
	}
	if got, want := g.player.Y, plat.Y-g.player.HalfH; got != want {
		t.Errorf("landing should snap bottom to platform top: y=%f, want %f", got, want)
	}
	if g.player.VY != 0 {
		t.Errorf("landing should zero vertical velocity, got %f", g.player.VY)
	}
}

func TestHeadBumpSnapsBelowPlatform(t *testing.T) {
	g := newPlayingGame(t)

	// Rising into the underside of a floating ledge.
	plat := g.level.Platforms[3]
	g.player.X = plat.CenterX()
	g.player.Y = plat.Bottom() + g.player.HalfH + 0.2
	g.player.VY = g.tun.Physics.JumpImpulse

	g.Step(core.InputFrame{}, testDt)

	if got, want := g.player.Y, plat.Bottom()+g.player.HalfH; got != want {
		t.Errorf("head bump should snap top to platform bottom: y=%f, want %f", got, want)
	}
	if g.player.VY != 0 {
		t.Errorf("head bump should zero vertical velocity, got %f", g.player.VY)
	}
	if g.player.Grounded {
		t.Error("head bump must not ground the player")
	}
}

func TestJumpOnlyOnRisingEdgeWhileGrounded(t *testing.T) {
	g := newPlayingGame(t)

	// Settle onto the ground.
	for i := 0; i < 30 && !g.player.Grounded; i++ {
		g.Step(core.InputFrame{}, testDt)
	}
	if !g.player.Grounded {
		t.Fatal("player should start grounded")
	}

	res := g.Step(core.InputFrame{Jump: true}, testDt)
	if countEvents(res.Events, core.EventJump) != 1 {
		t.Fatalf("grounded rising edge should jump, events: %v", res.Events)
	}
	if g.player.VY >= 0 {
		t.Fatalf("jump impulse should be upward, got vy=%f", g.player.VY)
	}

	// Holding jump while airborne must not re-trigger.
	jumps := 0
	for i := 0; i < 20; i++ {
		res = g.Step(core.InputFrame{Jump: true}, testDt)
		jumps += countEvents(res.Events, core.EventJump)
	}
	if jumps != 0 {
		t.Errorf("held jump while airborne produced %d extra impulses", jumps)
	}

	// Release and re-press mid-air: still nothing.
	g.Step(core.InputFrame{}, testDt)
	if g.player.Grounded {
		t.Skip("player landed before the mid-air re-press")
	}
	res = g.Step(core.InputFrame{Jump: true}, testDt)
	if countEvents(res.Events, core.EventJump) != 0 {
		t.Error("mid-air rising edge must not jump")
	}
}

func TestHeldJumpDoesNotRetriggerOnLanding(t *testing.T) {
	g := newPlayingGame(t)

	for i := 0; i < 30 && !g.player.Grounded; i++ {
		g.Step(core.InputFrame{}, testDt)
	}

	g.Step(core.InputFrame{Jump: true}, testDt)

	// Ride the whole arc with jump held; landing with the intent still
	// held is not a rising edge.
	jumps := 0
	for i := 0; i < 300; i++ {
		res := g.Step(core.InputFrame{Jump: true}, testDt)
		jumps += countEvents(res.Events, core.EventJump)
		if g.player.Grounded && i > 5 {
			break
		}
	}
	if jumps != 0 {
		t.Errorf("held jump across a landing produced %d impulses", jumps)
	}
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	g := newPlayingGame(t)

	// Run right into the side of the raised ground block. Platform 4
	// (a ledge at y=13) has its left edge at x=40; approach at its height.
	plat := g.level.Platforms[4]
	g.player.X = plat.X - 3
	g.player.Y = plat.CenterY()
	g.player.VY = 0

	for i := 0; i < 60; i++ {
		g.Step(core.InputFrame{Right: true}, testDt)
		if g.player.VX == 0 {
			break
		}
	}

	if got, want := g.player.X, plat.X-g.player.HalfW; math.Abs(got-want) > 1e-9 {
		t.Errorf("running into a wall should clamp to its edge: x=%f, want %f", got, want)
	}
}

func TestSimultaneousLeftRightResolvesRight(t *testing.T) {
	g := newPlayingGame(t)

	g.Step(core.InputFrame{Left: true, Right: true}, testDt)
	if g.player.VX <= 0 {
		t.Errorf("left+right should resolve to rightward motion, vx=%f", g.player.VX)
	}
	if g.player.Facing != 1 {
		t.Errorf("left+right should face right, got %d", g.player.Facing)
	}
}

func TestDragDecaysToRest(t *testing.T) {
	g := newPlayingGame(t)

	g.Step(core.InputFrame{Right: true}, testDt)
	if g.player.VX != g.tun.Physics.MoveSpeed {
		t.Fatalf("held right should move at fixed speed, vx=%f", g.player.VX)
	}

	for i := 0; i < 120; i++ {
		g.Step(core.InputFrame{}, testDt)
	}
	if g.player.VX != 0 {
		t.Errorf("drag should decay velocity to rest, vx=%f", g.player.VX)
	}
}

func TestWorldEdgeClamp(t *testing.T) {
	g := newPlayingGame(t)

	for i := 0; i < 600; i++ {
		g.Step(core.InputFrame{Left: true}, testDt)
	}

	min := g.tun.World.EdgeMargin + g.player.HalfW
	if g.player.X < min {
		t.Errorf("player escaped the left world bound: x=%f, min %f", g.player.X, min)
	}
}

func TestCoinTakenAtMostOnce(t *testing.T) {
	g := newPlayingGame(t)

	coin := &g.coins[0]
	g.player.X = coin.X
	g.player.Y = coin.Y

	res := g.Step(core.InputFrame{}, testDt)
	if !coin.Taken {
		t.Fatal("coin within pickup radius should be taken")
	}
	if countEvents(res.Events, core.EventCoin) != 1 {
		t.Fatalf("expected one coin event, got %v", res.Events)
	}
	if g.score != g.tun.Coins.Value {
		t.Fatalf("score should increase by the coin value, got %d", g.score)
	}

	// Lingering on the same spot must not score again.
	score := g.score
	for i := 0; i < 10; i++ {
		g.player.X = coin.X
		g.player.Y = coin.Y
		res = g.Step(core.InputFrame{}, testDt)
		if countEvents(res.Events, core.EventCoin) != 0 {
			t.Fatal("a taken coin re-emitted a pickup event")
		}
	}
	if g.score != score {
		t.Errorf("a taken coin scored again: %d -> %d", score, g.score)
	}
}

func TestCoinOutOfRangeNotTaken(t *testing.T) {
	g := newPlayingGame(t)

	coin := &g.coins[0]
	g.player.X = coin.X + g.tun.Coins.PickupRadius + 1
	g.player.Y = coin.Y

	g.Step(core.InputFrame{}, testDt)
	if coin.Taken {
		t.Error("coin outside the pickup radius should not be taken")
	}
}
