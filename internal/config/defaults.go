package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default arkanoid configuration.
// Matches defaults/arkanoid.yaml.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Area: AreaConfig{
			Width:  416, // 13 bricks
			Height: 600,
		},
		Ball: BallConfig{
			Radius:      7,
			MaxSpeedX:   6,
			NormalSpeed: 4,
			SlowSpeed:   3,
			FastSpeed:   5,
			MaxBalls:    256,
		},
		Paddle: PaddleConfig{
			Width:         60,
			ExtendedWidth: 90,
			Height:        10,
			OuterZone:     10,
			InnerZone:     15,
			FloorOffset:   50,
			StickyTicks:   3,
		},
		Bricks: BrickConfig{
			Width:  32,
			Height: 15,
		},
		Gifts: GiftConfig{
			Size:      16,
			FallSpeed: 2,
			Chance:    100,
		},
		Gameplay: GameplayConfig{
			ReserveBalls: 5,
			Levels:       true,
			Gifts:        true,
			Sound:        false,
		},
	}
}
