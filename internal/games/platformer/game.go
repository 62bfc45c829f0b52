// Package platformer implements Coin Dash, a horizontally scrolling
// platformer: run and jump across a fixed set of platforms, collect coins,
// reach the goal flag. The simulation is a pure, deterministic state
// transition over (input snapshot, dt) pairs; the platform layer owns
// timing, audio playback and rendering to the terminal.
package platformer

import (
	"github.com/vovakirdan/coindash/internal/config"
	"github.com/vovakirdan/coindash/internal/core"
	"github.com/vovakirdan/coindash/internal/registry"
)

// Game implements the Coin Dash game logic.
type Game struct {
	runtime core.RuntimeConfig
	tun     config.PlatformerConfig
	level   *Level

	// Level and config selection, applied on the next Reset. Held
	// per instance so concurrent sessions never see each other's pick.
	configPath string
	levelPath  string
	levelID    string

	player Player
	coins  []Coin
	camera Camera

	status    core.Status
	score     int
	paused    bool
	elapsed   float64 // accumulated playing time, seconds
	tickCount int
	prevJump  bool // previous tick's jump intent, for edge detection

	events []core.Event // per-tick scratch, reused across steps
}

// SetConfigPath sets the custom config path for loading.
func (g *Game) SetConfigPath(path string) {
	g.configPath = path
}

// SetLevelPath selects a level YAML file on disk. A file path wins over
// an embedded level ID.
func (g *Game) SetLevelPath(path string) {
	g.levelPath = path
}

// SetLevelID selects an embedded level by ID.
func (g *Game) SetLevelID(id string) {
	g.levelID = id
}

// New creates a new Coin Dash game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "coindash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Dash"
}

// Reset initializes the game: loads config and level, spawns the player
// and enters the title state. Also called on terminal resize.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(g.configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.tun = cfg

	lvl, err := g.loadSelectedLevel()
	if err != nil {
		lvl, _ = LoadEmbedded(DefaultLevelID)
	}
	g.level = lvl

	g.coins = make([]Coin, len(lvl.Coins))
	g.camera = NewCamera(float64(runtime.ScreenW), lvl.World.Width, cfg.Camera.Smoothing)
	g.status = core.StatusStart
	g.resetRun()
}

// loadSelectedLevel resolves this instance's level selection.
func (g *Game) loadSelectedLevel() (*Level, error) {
	if g.levelPath != "" {
		return LoadFile(g.levelPath)
	}
	id := g.levelID
	if id == "" {
		id = DefaultLevelID
	}
	return LoadByID(id)
}

// resetRun restores all mutable run state to initial values: spawn
// position, zero velocity, untaken coins, zero score.
func (g *Game) resetRun() {
	g.player = Player{
		X:      g.level.Spawn.X,
		Y:      g.level.Spawn.Y,
		HalfW:  g.tun.Player.HalfWidth,
		HalfH:  g.tun.Player.HalfHeight,
		Facing: 1,
	}
	for i := range g.coins {
		g.coins[i] = Coin{X: g.level.Coins[i].X, Y: g.level.Coins[i].Y}
	}
	g.score = 0
	g.paused = false
	g.elapsed = 0
	g.tickCount = 0
	g.prevJump = false
	g.camera.SnapTo(g.player.X)
}

// Resize adapts the viewport to new terminal dimensions. The run
// survives: level, score, coins and player state are untouched, only
// the camera bounds change.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.camera.Resize(float64(w))
}

// Step advances the game by the elapsed time dt (seconds, clamped to
// MaxDelta). Only the playing state simulates; start and the terminal
// states freeze the world and wait for the start/restart trigger.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = g.events[:0]

	if dt > MaxDelta {
		dt = MaxDelta
	}
	if dt <= 0 {
		return g.result()
	}

	if g.status != core.StatusPlaying {
		if in.Start {
			g.resetRun()
			g.status = core.StatusPlaying
		}
		return g.result()
	}

	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++
	g.elapsed += dt
	g.advanceAnimations(dt)

	g.stepPlayer(in, dt)
	g.collectCoins()
	g.checkGoal()
	if g.status == core.StatusPlaying {
		g.checkFall()
	}
	g.camera.Update(g.player.X, dt)

	return g.result()
}

// advanceAnimations spins the untaken coins. The goal pulse and the
// player squash are derived from elapsed time and velocity at render time.
func (g *Game) advanceAnimations(dt float64) {
	for i := range g.coins {
		if !g.coins[i].Taken {
			g.coins[i].Spin += g.tun.Coins.SpinRate * dt
		}
	}
}

// emit records an event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result builds the StepResult for the current tick.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Status: g.status,
		Paused: g.paused,
	}
}

// Level returns the currently loaded level.
func (g *Game) Level() *Level {
	return g.level
}

// LevelName returns the display name of the loaded level.
func (g *Game) LevelName() string {
	return g.level.Name
}

// CoinsCollected returns how many coins have been taken this run.
func (g *Game) CoinsCollected() int {
	n := 0
	for i := range g.coins {
		if g.coins[i].Taken {
			n++
		}
	}
	return n
}

// Ticks returns the number of simulated ticks this run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Register the game with the registry.
func init() {
	registry.Register("coindash", func() registry.Game {
		return New()
	})
}
