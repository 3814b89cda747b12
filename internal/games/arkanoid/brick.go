package arkanoid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrDuplicateBrick is returned when two bricks share a grid cell.
var ErrDuplicateBrick = errors.New("duplicate brick cell")

// BrickType determines a brick's color, score and durability.
type BrickType int

const (
	BrickWhite BrickType = iota
	BrickOrange
	BrickCyan
	BrickGreen
	BrickRed
	BrickBlue
	BrickMagenta
	BrickYellow
	BrickSilver // Reinforced, takes two hits
	BrickGold   // Indestructible
)

var brickScores = [...]int{
	BrickWhite:   1,
	BrickOrange:  2,
	BrickCyan:    3,
	BrickGreen:   4,
	BrickRed:     6,
	BrickBlue:    7,
	BrickMagenta: 8,
	BrickYellow:  9,
	BrickSilver:  0,
	BrickGold:    0,
}

var brickColors = [...]core.Color{
	BrickWhite:   core.ColorWhite,
	BrickOrange:  core.ColorOrange,
	BrickCyan:    core.ColorCyan,
	BrickGreen:   core.ColorGreen,
	BrickRed:     core.ColorRed,
	BrickBlue:    core.ColorBlue,
	BrickMagenta: core.ColorMagenta,
	BrickYellow:  core.ColorYellow,
	BrickSilver:  core.ColorSilver,
	BrickGold:    core.ColorGold,
}

// reinforcedHits is how many hits a silver brick absorbs.
const reinforcedHits = 2

// Score returns the points awarded when a brick of this type is destroyed.
func (t BrickType) Score() int {
	if t < 0 || int(t) >= len(brickScores) {
		return 0
	}
	return brickScores[t]
}

// Color returns the display color of the brick type.
func (t BrickType) Color() core.Color {
	if t < 0 || int(t) >= len(brickColors) {
		return core.ColorDefault
	}
	return brickColors[t]
}

// Indestructible reports whether hits are ignored.
func (t BrickType) Indestructible() bool {
	return t == BrickGold
}

// Brick is one cell of the field.
type Brick struct {
	Cell   core.Position // Grid coordinate (column, row)
	Hits   int           // Hits taken so far
	Type   BrickType
	Effect EffectType // Released on destruction, EffectNone for nothing
}

// Rect returns the brick's pixel rectangle.
func (b Brick) Rect(r Rules) core.Rect {
	return core.NewRect(b.Cell.X*r.BrickWidth, b.Cell.Y*r.BrickHeight, r.BrickWidth, r.BrickHeight)
}

// BrickHit is the number of times a brick was struck during one tick.
type BrickHit struct {
	Cell  core.Position
	Count int
}

// Field is an ordered set of bricks keyed by grid cell.
// A Field is never modified; Apply returns a new one.
type Field struct {
	bricks []Brick
}

// NewField builds a field from bricks in iteration order.
func NewField(bricks []Brick) (Field, error) {
	seen := make(map[core.Position]struct{}, len(bricks))
	for _, b := range bricks {
		if _, dup := seen[b.Cell]; dup {
			return Field{}, fmt.Errorf("%w: (%d,%d)", ErrDuplicateBrick, b.Cell.X, b.Cell.Y)
		}
		seen[b.Cell] = struct{}{}
	}
	out := make([]Brick, len(bricks))
	copy(out, bricks)
	return Field{bricks: out}, nil
}

// Bricks returns a copy of the bricks in iteration order.
func (f Field) Bricks() []Brick {
	out := make([]Brick, len(f.bricks))
	copy(out, f.bricks)
	return out
}

// Len returns the number of bricks left.
func (f Field) Len() int {
	return len(f.bricks)
}

// At returns the brick at cell, if any.
func (f Field) At(cell core.Position) (Brick, bool) {
	for _, b := range f.bricks {
		if b.Cell == cell {
			return b, true
		}
	}
	return Brick{}, false
}

// Cleared reports whether only indestructible bricks remain.
func (f Field) Cleared() bool {
	for _, b := range f.bricks {
		if !b.Type.Indestructible() {
			return false
		}
	}
	return true
}

// Hit returns the first brick, in field order, touched by the ball, together
// with the reflection to apply to the ball's velocity.
//
// Touching means the point of the brick nearest to the ball center lies
// within the ball radius. The reflection flips the axis along which the
// ball is further from the brick: (1,-1) for a top or bottom contact,
// (-1,1) for a side contact, (-1,-1) for an exact corner. An axis the ball
// does not move along is never the only one flipped.
func (f Field) Hit(b Ball, r Rules) (core.Position, core.Velocity, bool) {
	for _, brick := range f.bricks {
		q := brick.Rect(r).Closest(b.Pos)
		dx := core.Abs(b.Pos.X - q.X)
		dy := core.Abs(b.Pos.Y - q.Y)
		if dx*dx+dy*dy > b.Radius*b.Radius {
			continue
		}
		return brick.Cell, reflection(dx, dy, b.Vel), true
	}
	return core.Position{}, core.Velocity{}, false
}

func reflection(dx, dy int, v core.Velocity) core.Velocity {
	var refl core.Velocity
	switch {
	case dx == 0 && dy == 0:
		// Center inside the brick
		refl = core.Vel(1, -1)
	case dx > dy:
		refl = core.Vel(-1, 1)
	case dy > dx:
		refl = core.Vel(1, -1)
	default:
		refl = core.Vel(-1, -1)
	}

	switch {
	case refl.X < 0 && v.X == 0:
		return core.Vel(1, -1)
	case refl.Y < 0 && v.Y == 0 && v.X != 0:
		return core.Vel(-1, 1)
	}
	return refl
}

// Apply adds this tick's aggregated hits and removes destroyed bricks.
// It returns the new field and the destroyed bricks in field order, each
// reported once.
func (f Field) Apply(hits []BrickHit) (Field, []Brick) {
	if len(hits) == 0 {
		return f, nil
	}
	counts := make(map[core.Position]int, len(hits))
	for _, h := range hits {
		counts[h.Cell] += h.Count
	}

	kept := make([]Brick, 0, len(f.bricks))
	var destroyed []Brick
	for _, b := range f.bricks {
		n, struck := counts[b.Cell]
		if !struck || n <= 0 {
			kept = append(kept, b)
			continue
		}
		switch b.Type {
		case BrickGold:
			kept = append(kept, b)
		case BrickSilver:
			b.Hits += n
			if b.Hits >= reinforcedHits {
				destroyed = append(destroyed, b)
			} else {
				kept = append(kept, b)
			}
		default:
			b.Hits += n
			destroyed = append(destroyed, b)
		}
	}
	return Field{bricks: kept}, destroyed
}

// scoreOf sums the score of the given bricks.
func scoreOf(bricks []Brick) int {
	total := 0
	for _, b := range bricks {
		total += b.Type.Score()
	}
	return total
}
