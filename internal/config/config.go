// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid platform.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains all tunable rules for the brick-breaker simulation.
// Sizes are in play-area pixels, speeds in pixels per tick.
type ArkanoidConfig struct {
	Area     AreaConfig     `yaml:"area"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gifts    GiftConfig     `yaml:"gifts"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// AreaConfig defines the play-field size.
type AreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines ball size and speeds.
type BallConfig struct {
	Radius      int `yaml:"radius"`
	MaxSpeedX   int `yaml:"max_speed_x"` // |vx| limit
	NormalSpeed int `yaml:"normal_speed"`
	SlowSpeed   int `yaml:"slow_speed"`
	FastSpeed   int `yaml:"fast_speed"`
	MaxBalls    int `yaml:"max_balls"` // 0 = unlimited
}

// PaddleConfig defines paddle geometry and the sticky effect.
type PaddleConfig struct {
	Width         int `yaml:"width"`
	ExtendedWidth int `yaml:"extended_width"`
	Height        int `yaml:"height"`
	OuterZone     int `yaml:"outer_zone"`
	InnerZone     int `yaml:"inner_zone"`
	FloorOffset   int `yaml:"floor_offset"` // Gap between paddle and floor
	StickyTicks   int `yaml:"sticky_ticks"`
}

// BrickConfig defines brick cell size.
type BrickConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GiftConfig defines falling power-ups.
type GiftConfig struct {
	Size      int `yaml:"size"`
	FallSpeed int `yaml:"fall_speed"`
	Chance    int `yaml:"chance"` // Percent of bricks carrying a reward (0-100)
}

// GameplayConfig defines lives and the initial toggle flags.
type GameplayConfig struct {
	ReserveBalls int  `yaml:"reserve_balls"`
	Levels       bool `yaml:"levels"`
	Gifts        bool `yaml:"gifts"`
	Sound        bool `yaml:"sound"`
}

// Validation errors.
var (
	ErrNonPositive = errors.New("value must be positive")
	ErrSpeedOrder  = errors.New("speeds must satisfy slow <= normal <= fast")
	ErrPaddleZones = errors.New("paddle zones wider than paddle")
)

// Validate checks that the configuration describes a playable field.
func (c ArkanoidConfig) Validate() error {
	positives := []struct {
		name string
		val  int
	}{
		{"area.width", c.Area.Width},
		{"area.height", c.Area.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.max_speed_x", c.Ball.MaxSpeedX},
		{"ball.normal_speed", c.Ball.NormalSpeed},
		{"ball.slow_speed", c.Ball.SlowSpeed},
		{"ball.fast_speed", c.Ball.FastSpeed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.extended_width", c.Paddle.ExtendedWidth},
		{"paddle.height", c.Paddle.Height},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"gifts.size", c.Gifts.Size},
		{"gifts.fall_speed", c.Gifts.FallSpeed},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("config: %s = %d: %w", p.name, p.val, ErrNonPositive)
		}
	}

	if c.Ball.SlowSpeed > c.Ball.NormalSpeed || c.Ball.NormalSpeed > c.Ball.FastSpeed {
		return fmt.Errorf("config: ball speeds %d/%d/%d: %w",
			c.Ball.SlowSpeed, c.Ball.NormalSpeed, c.Ball.FastSpeed, ErrSpeedOrder)
	}

	zones := 2 * (c.Paddle.OuterZone + c.Paddle.InnerZone)
	if zones > c.Paddle.Width || zones > c.Paddle.ExtendedWidth {
		return fmt.Errorf("config: zones %dpx, paddle %dpx: %w", zones, c.Paddle.Width, ErrPaddleZones)
	}

	if c.Paddle.Width > c.Area.Width || c.Paddle.ExtendedWidth > c.Area.Width {
		return fmt.Errorf("config: paddle wider than area: %w", ErrNonPositive)
	}

	if c.Gifts.Chance < 0 || c.Gifts.Chance > 100 {
		return fmt.Errorf("config: gifts.chance = %d out of range 0-100", c.Gifts.Chance)
	}

	if c.Gameplay.ReserveBalls < 0 || c.Ball.MaxBalls < 0 {
		return fmt.Errorf("config: negative ball count")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
