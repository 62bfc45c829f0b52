package platformer

import "github.com/vovakirdan/coindash/internal/core"

// snapScale converts float world coordinates to fixed-point snapshot ints.
const snapScale = 1000

// Snapshot contains the complete mutable run state in primitive types,
// for determinism tests and replay tooling.
type Snapshot struct {
	Tick   uint64
	Status int
	Score  int
	Paused bool

	// Player state (fixed-point, x1000)
	PlayerX  int
	PlayerY  int
	PlayerVX int
	PlayerVY int
	Facing   int
	Grounded bool
	PrevJump bool

	CameraX   int // fixed-point, x1000
	ElapsedMS int

	// Per-coin taken flags, level order
	CoinsTaken []bool
}

// Snapshot returns the current run state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	taken := make([]bool, len(g.coins))
	for i := range g.coins {
		taken[i] = g.coins[i].Taken
	}

	return Snapshot{
		Tick:   uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Status: int(g.status),
		Score:  g.score,
		Paused: g.paused,

		PlayerX:  int(g.player.X * snapScale),
		PlayerY:  int(g.player.Y * snapScale),
		PlayerVX: int(g.player.VX * snapScale),
		PlayerVY: int(g.player.VY * snapScale),
		Facing:   g.player.Facing,
		Grounded: g.player.Grounded,
		PrevJump: g.prevJump,

		CameraX:   int(g.camera.X * snapScale),
		ElapsedMS: int(g.elapsed * 1000),

		CoinsTaken: taken,
	}
}

// ApplySnapshot restores run state from a snapshot. The level and config
// must already be loaded via Reset.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.status = core.Status(snap.Status)
	g.score = snap.Score
	g.paused = snap.Paused

	g.player.X = float64(snap.PlayerX) / snapScale
	g.player.Y = float64(snap.PlayerY) / snapScale
	g.player.VX = float64(snap.PlayerVX) / snapScale
	g.player.VY = float64(snap.PlayerVY) / snapScale
	g.player.Facing = snap.Facing
	g.player.Grounded = snap.Grounded
	g.prevJump = snap.PrevJump

	g.camera.X = float64(snap.CameraX) / snapScale
	g.elapsed = float64(snap.ElapsedMS) / 1000

	for i := range g.coins {
		if i < len(snap.CoinsTaken) {
			g.coins[i].Taken = snap.CoinsTaken[i]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing)   //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Grounded)
	h = h*31 + boolBit(snap.PrevJump)
	h = h*31 + uint64(snap.CameraX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedMS) //#nosec G115 -- hash computation

	for _, taken := range snap.CoinsTaken {
		h = h*31 + boolBit(taken)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
