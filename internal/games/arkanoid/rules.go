// Package arkanoid implements the deterministic simulation core of an
// Arkanoid-style brick breaker: ball motion, brick and paddle collisions,
// falling gifts with their effects, and the level/win/lose state machine.
//
// Every entity is a plain value. Each event handler takes the current Game
// and returns a new one; nothing is mutated in place.
package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Rules holds the fixed constants of a game. It is read-only for the
// lifetime of a Game.
type Rules struct {
	BallRadius  int
	MaxSpeedX   int // Horizontal velocity is clamped to [-MaxSpeedX, MaxSpeedX]
	NormalSpeed int // Vertical speed without SLOW/FAST
	SlowSpeed   int
	FastSpeed   int
	MaxBalls    int // Cap for multi-ball duplication, 0 = unlimited

	PaddleWidth   int
	ExtendedWidth int
	PaddleHeight  int
	OuterZone     int // Width of the outermost bounce zones
	InnerZone     int // Width of the intermediate bounce zones
	FloorOffset   int
	StickyTicks   int

	BrickWidth  int
	BrickHeight int

	GiftSize      int
	GiftFallSpeed int
	GiftChance    int // Percent

	ReserveBalls int
	Flags        Flags // Initial toggle flags
}

// DefaultRules returns the rules of the classic game.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultArkanoidConfig())
}

// RulesFromConfig converts a validated configuration to Rules.
func RulesFromConfig(cfg config.ArkanoidConfig) Rules {
	return Rules{
		BallRadius:  cfg.Ball.Radius,
		MaxSpeedX:   cfg.Ball.MaxSpeedX,
		NormalSpeed: cfg.Ball.NormalSpeed,
		SlowSpeed:   cfg.Ball.SlowSpeed,
		FastSpeed:   cfg.Ball.FastSpeed,
		MaxBalls:    cfg.Ball.MaxBalls,

		PaddleWidth:   cfg.Paddle.Width,
		ExtendedWidth: cfg.Paddle.ExtendedWidth,
		PaddleHeight:  cfg.Paddle.Height,
		OuterZone:     cfg.Paddle.OuterZone,
		InnerZone:     cfg.Paddle.InnerZone,
		FloorOffset:   cfg.Paddle.FloorOffset,
		StickyTicks:   cfg.Paddle.StickyTicks,

		BrickWidth:  cfg.Bricks.Width,
		BrickHeight: cfg.Bricks.Height,

		GiftSize:      cfg.Gifts.Size,
		GiftFallSpeed: cfg.Gifts.FallSpeed,
		GiftChance:    cfg.Gifts.Chance,

		ReserveBalls: cfg.Gameplay.ReserveBalls,
		Flags: Flags{
			Levels: cfg.Gameplay.Levels,
			Gifts:  cfg.Gameplay.Gifts,
			Sound:  cfg.Gameplay.Sound,
		},
	}
}

// DefaultArea returns the play-field size of the classic game.
func DefaultArea() core.Area {
	return AreaFromConfig(config.DefaultArkanoidConfig())
}

// AreaFromConfig returns the configured play-field size.
func AreaFromConfig(cfg config.ArkanoidConfig) core.Area {
	return core.Area{Width: cfg.Area.Width, Height: cfg.Area.Height}
}

// speedFor returns the vertical speed magnitude for the active effects.
// FAST wins if both are somehow present.
func (r Rules) speedFor(effects EffectSet) int {
	switch {
	case effects.Has(EffectFast):
		return r.FastSpeed
	case effects.Has(EffectSlow):
		return r.SlowSpeed
	default:
		return r.NormalSpeed
	}
}
