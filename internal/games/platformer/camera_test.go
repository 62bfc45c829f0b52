package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/coindash/internal/core"
)

func TestCameraConvergesOnTarget(t *testing.T) {
	cam := NewCamera(80, 160, 6.0)

	// Player far to the right; camera should converge on centering them.
	for i := 0; i < 600; i++ {
		cam.Update(100, testDt)
	}

	want := 100.0 - 40.0
	if math.Abs(cam.X-want) > 0.1 {
		t.Errorf("camera should converge on %f, got %f", want, cam.X)
	}
}

func TestCameraClampedToWorld(t *testing.T) {
	cam := NewCamera(80, 160, 6.0)

	// Beyond the right world edge.
	for i := 0; i < 600; i++ {
		cam.Update(10000, testDt)
		if cam.X < 0 || cam.X > 80 {
			t.Fatalf("camera offset escaped [0, 80]: %f", cam.X)
		}
	}

	// Beyond the left world edge.
	for i := 0; i < 600; i++ {
		cam.Update(-10000, testDt)
		if cam.X < 0 || cam.X > 80 {
			t.Fatalf("camera offset escaped [0, 80]: %f", cam.X)
		}
	}
	if cam.X != 0 {
		t.Errorf("camera should rest at 0 for a far-left target, got %f", cam.X)
	}
}

func TestCameraNarrowWorldStaysAtZero(t *testing.T) {
	// World narrower than the viewport: nothing to scroll.
	cam := NewCamera(120, 60, 6.0)

	for i := 0; i < 120; i++ {
		cam.Update(55, testDt)
	}
	if cam.X != 0 {
		t.Errorf("camera should stay at 0 when the world fits, got %f", cam.X)
	}
}

func TestCameraSnapSkipsSmoothing(t *testing.T) {
	cam := NewCamera(80, 160, 6.0)

	cam.SnapTo(100)
	if cam.X != 60 {
		t.Errorf("snap should jump straight to the target, got %f", cam.X)
	}
}

func TestCameraSmoothingIsGradual(t *testing.T) {
	cam := NewCamera(80, 160, 6.0)

	cam.Update(100, testDt)
	// One tick moves a fraction dt*k of the distance, not all of it.
	want := 60.0 * math.Min(1, testDt*6.0)
	if math.Abs(cam.X-want) > 1e-9 {
		t.Errorf("one tick should move %f, moved %f", want, cam.X)
	}
}

func TestCameraFollowsDuringPlay(t *testing.T) {
	g := newPlayingGame(t)

	g.player.X = 100
	for i := 0; i < 60; i++ {
		g.Step(core.InputFrame{}, testDt)
	}

	if g.camera.X <= 0 {
		t.Errorf("camera should have followed the player right, got %f", g.camera.X)
	}
	max := g.level.World.Width - float64(g.runtime.ScreenW)
	if g.camera.X > max {
		t.Errorf("camera exceeded world clamp %f: %f", max, g.camera.X)
	}
}
