package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Ball is a moving circle. Its radius is fixed at creation.
type Ball struct {
	Pos    core.Position // Center
	Vel    core.Velocity
	Radius int
}

// Resting reports whether the ball sits on the paddle waiting for launch.
func (b Ball) Resting() bool {
	return b.Vel.Y == 0
}

// BallSet holds every ball in play.
type BallSet []Ball

// Collisions summarizes what the balls touched during one tick.
type Collisions struct {
	Bricks     []BrickHit // Aggregated per brick, in first-hit order
	PaddleHits int
	WallHits   int // Side and top walls
}

func (c *Collisions) addBrick(cell core.Position) {
	for i := range c.Bricks {
		if c.Bricks[i].Cell == cell {
			c.Bricks[i].Count++
			return
		}
	}
	c.Bricks = append(c.Bricks, BrickHit{Cell: cell, Count: 1})
}

// Resting reports whether any ball waits on the paddle.
func (s BallSet) Resting() bool {
	for _, b := range s {
		if b.Resting() {
			return true
		}
	}
	return false
}

// Advance moves every ball one tick and resolves its collisions.
//
// Each ball first takes the vertical speed of the active effects, keeping its
// direction. Then the first matching rule wins: side wall, top wall, brick,
// paddle, free flight. Wall and single-axis brick hits undo the offending
// component before reflecting it. Balls below the floor are dropped.
// While MULTIBALL is active, one new ball is spawned per surviving ball.
func (s BallSet) Advance(area core.Area, r Rules, p Paddle, f Field, effects EffectSet) (BallSet, Collisions) {
	var col Collisions
	speed := r.speedFor(effects)

	out := make(BallSet, 0, len(s))
	for _, b := range s {
		if b.Pos.Y >= area.Height {
			continue
		}
		b.Vel.Y = core.Sign(b.Vel.Y) * speed
		b = b.step(area, r, p, f, &col)
		if b.Pos.Y >= area.Height {
			continue
		}
		out = append(out, b)
	}

	if effects.Has(EffectMultiball) {
		out = out.fanOut(area, r)
	}
	return out, col
}

func (b Ball) step(area core.Area, r Rules, p Paddle, f Field, col *Collisions) Ball {
	if b.Pos.X < b.Radius || b.Pos.X > area.Width-b.Radius {
		b.Pos.X -= b.Vel.X
		b.Vel.X = -b.Vel.X
		col.WallHits++
		return b
	}

	if b.Pos.Y < b.Radius {
		b.Pos.Y -= b.Vel.Y
		b.Vel.Y = -b.Vel.Y
		col.WallHits++
		return b
	}

	if cell, refl, ok := f.Hit(b, r); ok {
		switch {
		case refl.X < 0 && refl.Y < 0:
			b.Pos = b.Pos.Add(b.Vel.Times(refl))
		case refl.Y < 0:
			b.Pos.Y -= b.Vel.Y
		default:
			b.Pos.X -= b.Vel.X
		}
		b.Vel = b.Vel.Times(refl).ClampX(r.MaxSpeedX)
		col.addBrick(cell)
		return b
	}

	if b.Vel.Y > 0 {
		if v, ok := p.Bounce(b, r); ok {
			col.PaddleHits++
			if p.Sticky() {
				b.Vel = core.Velocity{}
				return b
			}
			b.Vel = v
			b.Pos = b.Pos.Add(b.Vel)
			return b
		}
	}

	b.Pos = b.Pos.Add(b.Vel)
	return b
}

// fanOut appends one new ball per ball in s, dropped from the top center.
// The total never exceeds r.MaxBalls unless it is zero.
func (s BallSet) fanOut(area core.Area, r Rules) BallSet {
	n := len(s)
	if r.MaxBalls > 0 {
		n = core.Min(n, r.MaxBalls-len(s))
	}
	if n <= 0 {
		return s
	}
	out := make(BallSet, len(s), len(s)+n)
	copy(out, s)
	for i := 0; i < n; i++ {
		out = append(out, Ball{
			Pos:    core.Pos(area.Width/2, r.BallRadius),
			Vel:    core.Vel(0, r.NormalSpeed),
			Radius: r.BallRadius,
		})
	}
	return out
}

// shift moves resting balls horizontally by dx, keeping them clear of the
// side walls.
func (s BallSet) shift(dx int, area core.Area) BallSet {
	out := make(BallSet, len(s))
	for i, b := range s {
		if b.Resting() {
			b.Pos.X = core.Clamp(b.Pos.X+dx, b.Radius, area.Width-b.Radius)
		}
		out[i] = b
	}
	return out
}

// launch gives resting balls the normal upward speed.
func (s BallSet) launch(r Rules) BallSet {
	out := make(BallSet, len(s))
	for i, b := range s {
		if b.Resting() {
			b.Vel.Y = -r.NormalSpeed
		}
		out[i] = b
	}
	return out
}
