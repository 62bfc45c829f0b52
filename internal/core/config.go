package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Status enumerates the run states of a game.
// Transitions only move forward; terminal states return to StatusPlaying
// only through an explicit start/restart trigger.
type Status int

const (
	StatusStart    Status = iota // Title screen, waiting for the start trigger
	StatusPlaying                // Simulation active
	StatusGameOver               // Terminal: player fell out of the world
	StatusWin                    // Terminal: player reached the goal
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	case StatusWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the current run.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusWin
}

// GameState represents the externally visible state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score
	Status Status // Current run status
	Paused bool   // Whether the game is paused
}

// Event is a discrete occurrence produced by a simulation tick.
// The platform layer maps events to audio cues; the core never touches
// the speaker directly.
type Event int

const (
	EventJump Event = iota // Jump impulse applied
	EventCoin              // Coin collected
	EventWin               // Goal reached
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventCoin:
		return "coin"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
