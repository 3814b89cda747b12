package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Paddle is the player's racket. Pos is its center.
type Paddle struct {
	Pos        core.Position
	Width      int
	StickyLeft int // Paddle contacts left before STICKY wears off
}

// NewPaddle returns a normal-width paddle centered above the floor.
func NewPaddle(area core.Area, r Rules) Paddle {
	return Paddle{
		Pos:   core.Pos(area.Width/2, area.Height-r.FloorOffset-r.PaddleHeight),
		Width: r.PaddleWidth,
	}
}

// Left returns the x of the left edge.
func (p Paddle) Left() int { return p.Pos.X - p.Width/2 }

// Right returns the x of the right edge.
func (p Paddle) Right() int { return p.Pos.X + p.Width/2 }

// Top returns the y of the top of the paddle's band.
func (p Paddle) Top(r Rules) int { return p.Pos.Y - r.PaddleHeight/2 }

// Bottom returns the y of the bottom of the paddle's band.
func (p Paddle) Bottom(r Rules) int { return p.Pos.Y + r.PaddleHeight/2 }

// Rect returns the paddle's bounding box.
func (p Paddle) Rect(r Rules) core.Rect {
	return core.NewRect(p.Left(), p.Top(r), p.Width, r.PaddleHeight)
}

// Sticky reports whether the paddle currently catches balls.
func (p Paddle) Sticky() bool {
	return p.StickyLeft > 0
}

// inBand reports whether y lies within the paddle's vertical band.
func (p Paddle) inBand(y int, r Rules) bool {
	return y >= p.Top(r) && y <= p.Bottom(r)
}

// zoneOffset returns the horizontal velocity change for a contact at x, and
// false when x is off the paddle. Zones, left to right: outer (-3),
// inner (-1), center (0), inner (+1), outer (+3). Only the center zone grows
// with the paddle.
func (p Paddle) zoneOffset(x int, r Rules) (int, bool) {
	left, right := p.Left(), p.Right()
	switch {
	case x < left || x > right:
		return 0, false
	case x <= left+r.OuterZone:
		return -3, true
	case x <= left+r.OuterZone+r.InnerZone:
		return -1, true
	case x >= right-r.OuterZone:
		return 3, true
	case x >= right-r.OuterZone-r.InnerZone:
		return 1, true
	default:
		return 0, true
	}
}

// Bounce returns the velocity of a ball leaving the paddle, or false if the
// ball is not touching it. The ball's bottom edge must be inside the band.
func (p Paddle) Bounce(b Ball, r Rules) (core.Velocity, bool) {
	if !p.inBand(b.Pos.Y+b.Radius, r) {
		return core.Velocity{}, false
	}
	off, ok := p.zoneOffset(b.Pos.X, r)
	if !ok {
		return core.Velocity{}, false
	}
	return core.Vel(b.Vel.X+off, -b.Vel.Y).ClampX(r.MaxSpeedX), true
}

// Captures reports whether a falling gift is caught: its center is over the
// paddle and its bottom edge is inside the band.
func (p Paddle) Captures(g Gift, r Rules) bool {
	cx := g.Pos.X + r.GiftSize/2
	if cx < p.Left() || cx > p.Right() {
		return false
	}
	return p.inBand(g.Pos.Y+r.GiftSize, r)
}

// MoveTo centers the paddle on x, keeping it inside the walls.
func (p Paddle) MoveTo(x int, area core.Area) Paddle {
	half := p.Width / 2
	p.Pos.X = core.Clamp(x, half, core.Max(half, area.Width-half))
	return p
}

// Update applies this tick's effects. stickyCaught is true when a STICKY
// gift was captured this tick; contacts is the number of ball-paddle
// collisions. Width follows WIDEN.
func (p Paddle) Update(stickyCaught bool, effects EffectSet, contacts int, area core.Area, r Rules) Paddle {
	switch {
	case !effects.Has(EffectSticky):
		p.StickyLeft = 0
	case stickyCaught:
		p.StickyLeft = r.StickyTicks
	default:
		p.StickyLeft = core.Max(0, p.StickyLeft-contacts)
	}

	width := r.PaddleWidth
	if effects.Has(EffectWiden) {
		width = r.ExtendedWidth
	}
	if width != p.Width {
		p.Width = width
		p = p.MoveTo(p.Pos.X, area)
	}
	return p
}
