package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/coindash/internal/core"
)

const testDt = 1.0 / 60.0

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

// newPlayingGame returns a game that has been started into the playing state.
func newPlayingGame(t *testing.T) *Game {
	t.Helper()

	g := New()
	g.Reset(testConfig())

	if g.status != core.StatusStart {
		t.Fatalf("fresh game should be in start state, got %v", g.status)
	}

	g.Step(core.InputFrame{Start: true}, testDt)
	if g.status != core.StatusPlaying {
		t.Fatalf("start trigger should enter playing, got %v", g.status)
	}
	return g
}

func TestStartStateFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	y := g.player.Y
	for i := 0; i < 30; i++ {
		g.Step(core.InputFrame{Right: true, Jump: true}, testDt)
	}

	if g.player.Y != y {
		t.Errorf("player should not move in start state, was %f, now %f", y, g.player.Y)
	}
	if g.status != core.StatusStart {
		t.Errorf("status should stay start without a start trigger, got %v", g.status)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newPlayingGame(t)

	g.Step(core.InputFrame{Pause: true}, testDt)
	if !g.paused {
		t.Fatal("game should be paused")
	}

	y := g.player.Y
	g.Step(core.InputFrame{}, testDt)
	if g.player.Y != y {
		t.Errorf("player should not move while paused, was %f, now %f", y, g.player.Y)
	}

	g.Step(core.InputFrame{Pause: true}, testDt)
	if g.paused {
		t.Error("game should be unpaused")
	}
}

func TestWinTriggersExactlyOnce(t *testing.T) {
	g := newPlayingGame(t)

	// Park the player on the ground inside the goal rectangle.
	goal := g.level.Goal
	g.player.X = goal.CenterX()
	g.player.Y = goal.Bottom() - g.player.HalfH
	g.player.VY = 0

	res := g.Step(core.InputFrame{}, testDt)
	if res.State.Status != core.StatusWin {
		t.Fatalf("goal overlap should win, got %v", res.State.Status)
	}
	if countEvents(res.Events, core.EventWin) != 1 {
		t.Fatalf("expected exactly one win event, got %v", res.Events)
	}

	// The win state is terminal; overlapping frames must not re-trigger.
	for i := 0; i < 10; i++ {
		res = g.Step(core.InputFrame{}, testDt)
		if len(res.Events) != 0 {
			t.Fatalf("frozen win state should emit no events, got %v", res.Events)
		}
	}
}

func TestGameOverOnFall(t *testing.T) {
	g := newPlayingGame(t)

	// Drop the player into the first gap, past the fall margin.
	g.player.X = 49
	g.player.Y = g.level.World.Height + g.tun.World.FallMargin + 2
	g.player.VY = g.tun.Physics.MaxFallSpeed

	res := g.Step(core.InputFrame{}, testDt)
	if res.State.Status != core.StatusGameOver {
		t.Errorf("falling below the world should end the run, got %v", res.State.Status)
	}
}

func TestRestartResetsRunState(t *testing.T) {
	g := newPlayingGame(t)

	// Take a coin and then lose.
	g.player.X = g.coins[0].X
	g.player.Y = g.coins[0].Y
	g.Step(core.InputFrame{}, testDt)
	if g.score == 0 {
		t.Fatal("expected a coin pickup before the restart")
	}

	g.player.Y = g.level.World.Height + g.tun.World.FallMargin + 2
	g.Step(core.InputFrame{}, testDt)
	if g.status != core.StatusGameOver {
		t.Fatal("expected game over before the restart")
	}

	g.Step(core.InputFrame{Start: true}, testDt)

	if g.status != core.StatusPlaying {
		t.Errorf("restart should enter playing, got %v", g.status)
	}
	if g.score != 0 {
		t.Errorf("restart should zero the score, got %d", g.score)
	}
	for i, c := range g.coins {
		if c.Taken {
			t.Errorf("restart should untake coin %d", i)
		}
	}
	if g.player.X != g.level.Spawn.X || g.player.Y != g.level.Spawn.Y {
		t.Errorf("restart should respawn at (%f, %f), got (%f, %f)",
			g.level.Spawn.X, g.level.Spawn.Y, g.player.X, g.player.Y)
	}
	if g.player.VX != 0 || g.player.VY != 0 {
		t.Errorf("restart should zero velocity, got (%f, %f)", g.player.VX, g.player.VY)
	}
}

func TestLevelSelectionIsPerInstance(t *testing.T) {
	a := New()
	a.SetLevelID("meadow")
	a.Reset(testConfig())

	b := New()
	b.SetLevelID("summit")
	b.Reset(testConfig())

	// One session picking a level must not leak into another session's
	// next Reset (a terminal resize fallback triggers one mid-run).
	a.Reset(testConfig())

	if got := a.LevelName(); got != "Meadow Run" {
		t.Errorf("instance a should keep its own level, got %q", got)
	}
	if got := b.LevelName(); got != "Summit Trail" {
		t.Errorf("instance b should keep its own level, got %q", got)
	}
}

func TestResizePreservesRun(t *testing.T) {
	g := newPlayingGame(t)

	g.player.X = g.coins[0].X
	g.player.Y = g.coins[0].Y
	g.Step(core.InputFrame{}, testDt)
	if g.score == 0 {
		t.Fatal("expected a coin pickup before the resize")
	}
	score := g.score

	g.Resize(120, 30)

	if g.status != core.StatusPlaying {
		t.Errorf("resize should keep the run playing, got %v", g.status)
	}
	if g.score != score {
		t.Errorf("resize should keep the score, was %d, now %d", score, g.score)
	}
	if !g.coins[0].Taken {
		t.Error("resize should keep collected coins taken")
	}
	if g.runtime.ScreenW != 120 || g.runtime.ScreenH != 30 {
		t.Errorf("resize should update the viewport, got %dx%d",
			g.runtime.ScreenW, g.runtime.ScreenH)
	}
	max := math.Max(0, g.level.World.Width-120)
	if g.camera.X < 0 || g.camera.X > max {
		t.Errorf("camera offset escaped [0, %f] after resize: %f", max, g.camera.X)
	}
}

func TestDeltaTimeClamped(t *testing.T) {
	g := newPlayingGame(t)

	// Mid-air, far from any platform.
	g.player.Y = 10
	g.player.VY = 0
	y := g.player.Y

	// A stalled host hands over a huge dt; the integration step must not
	// exceed the MaxDelta clamp.
	g.Step(core.InputFrame{}, 2.0)

	maxFall := g.tun.Physics.Gravity * MaxDelta * MaxDelta
	if moved := g.player.Y - y; moved > maxFall+1e-9 {
		t.Errorf("oversized dt should clamp to %f, player moved %f", MaxDelta, moved)
	}
}

func TestDeterminism(t *testing.T) {
	inputAt := func(i int) core.InputFrame {
		in := core.InputFrame{Right: true}
		if i%30 < 10 {
			in.Jump = true
		}
		return in
	}

	run := func() (*Game, uint64) {
		g := newPlayingGame(t)
		for i := 0; i < 600; i++ {
			g.Step(inputAt(i), testDt)
			if g.status.Terminal() {
				break
			}
		}
		snap := g.Snapshot()
		return g, snap.Hash()
	}

	g1, h1 := run()
	g2, h2 := run()

	if h1 != h2 {
		t.Errorf("identical input sequences should produce identical snapshots: %d vs %d", h1, h2)
	}
	if g1.score != g2.score {
		t.Errorf("scores differ: %d vs %d", g1.score, g2.score)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newPlayingGame(t)
	for i := 0; i < 120; i++ {
		g.Step(core.InputFrame{Right: true, Jump: i%40 < 5}, testDt)
	}
	snap := g.Snapshot()

	restored := New()
	restored.Reset(testConfig())
	restored.Step(core.InputFrame{Start: true}, testDt)
	restored.ApplySnapshot(snap)

	// Both games must evolve identically from the restored state.
	for i := 0; i < 120; i++ {
		in := core.InputFrame{Right: true, Jump: i%25 < 5}
		g.Step(in, testDt)
		restored.Step(in, testDt)
	}

	h1 := g.Snapshot()
	h2 := restored.Snapshot()
	if h1.Hash() != h2.Hash() {
		t.Error("restored game diverged from the original")
	}
}

func TestRenderDrawsWorldAndHUD(t *testing.T) {
	g := newPlayingGame(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hasContent := false
	for _, ch := range screen.String() {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("render should draw something to the screen")
	}

	// Ground platform top strip is visible near the bottom of the viewport.
	groundRow := hudRows + 20
	found := false
	for x := 0; x < screen.Width(); x++ {
		if screen.Get(x, groundRow) == PlatformTop {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected platform top strip on row %d", groundRow)
	}

	if screen.Get(2, 0) != 'S' { // " Score: ..." starts at column 1
		t.Errorf("expected HUD score text on row 0, got %q", screen.Get(2, 0))
	}
}

func countEvents(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}
