// Package config provides YAML-based game configuration loading for the
// platform.
package config

// PlatformerConfig contains all tunables for the Coin Dash platformer.
type PlatformerConfig struct {
	Physics PlatformerPhysics `yaml:"physics"`
	Player  PlatformerPlayer  `yaml:"player"`
	Camera  CameraConfig      `yaml:"camera"`
	Coins   CoinConfig        `yaml:"coins"`
	World   WorldConfig       `yaml:"world"`
	Audio   AudioConfig       `yaml:"audio"`
}

// PlatformerPhysics defines the simulation constants, in world cells and
// seconds. Negative jump impulse means upward (screen Y grows downward).
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // cells/s^2
	MoveSpeed    float64 `yaml:"move_speed"`     // cells/s
	JumpImpulse  float64 `yaml:"jump_impulse"`   // cells/s, negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // cells/s
	Drag         float64 `yaml:"drag"`           // horizontal decay rate, 1/s
}

// PlatformerPlayer defines the player's collision half-extents.
type PlatformerPlayer struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// CameraConfig defines the horizontal follow behavior.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // exponential smoothing constant, 1/s
}

// CoinConfig defines coin pickup behavior.
type CoinConfig struct {
	PickupRadius float64 `yaml:"pickup_radius"` // center-to-center distance, cells
	Value        int     `yaml:"value"`         // score per coin
	SpinRate     float64 `yaml:"spin_rate"`     // animation phase advance, rad/s
}

// WorldConfig defines world boundary behavior.
type WorldConfig struct {
	EdgeMargin float64 `yaml:"edge_margin"` // horizontal clamp margin, cells
	FallMargin float64 `yaml:"fall_margin"` // cells below world height before game over
}

// AudioConfig controls the platform-side audio engine.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}
