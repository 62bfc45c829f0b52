package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default Coin Dash configuration.
// Kept in sync with defaults/platformer.yaml; used as a last-resort
// fallback if the embedded YAML fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:      60.0,
			MoveSpeed:    16.0,
			JumpImpulse:  -24.0,
			MaxFallSpeed: 40.0,
			Drag:         10.0,
		},
		Player: PlatformerPlayer{
			HalfWidth:  1.0,
			HalfHeight: 1.0,
		},
		Camera: CameraConfig{
			Smoothing: 6.0,
		},
		Coins: CoinConfig{
			PickupRadius: 1.8,
			Value:        10,
			SpinRate:     8.0,
		},
		World: WorldConfig{
			EdgeMargin: 0.5,
			FallMargin: 4.0,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.7,
		},
	}
}
