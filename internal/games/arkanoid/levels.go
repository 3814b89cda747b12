package arkanoid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Level layout errors.
var (
	ErrEmptyLevelSet    = errors.New("level set has no levels")
	ErrEmptyLayout      = errors.New("layout has no rows")
	ErrRaggedLayout     = errors.New("layout rows differ in width")
	ErrUnknownBrickCode = errors.New("unknown brick code")
	ErrLayoutTooLarge   = errors.New("layout does not fit the play area")
)

// Layout is the static brick map of one level. Each row is a string of
// brick codes: '0'..'9' select a BrickType, 'x' or '.' leaves the cell empty.
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Width returns the number of columns.
func (l Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l.Rows)
}

// Validate checks the layout is rectangular and uses known codes.
func (l Layout) Validate() error {
	if len(l.Rows) == 0 {
		return ErrEmptyLayout
	}
	w := len(l.Rows[0])
	for y, row := range l.Rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedLayout, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			if _, _, err := brickCode(row[x]); err != nil {
				return fmt.Errorf("row %d col %d: %w", y, x, err)
			}
		}
	}
	return nil
}

// brickCode decodes one layout cell. present is false for an empty cell.
func brickCode(c byte) (t BrickType, present bool, err error) {
	switch {
	case c == 'x' || c == 'X' || c == '.':
		return 0, false, nil
	case c >= '0' && c <= '9':
		return BrickType(c - '0'), true, nil
	default:
		return 0, false, fmt.Errorf("%w %q", ErrUnknownBrickCode, c)
	}
}

// LevelSet is the ordered, read-only list of level layouts.
type LevelSet interface {
	Len() int
	Layout(n int) Layout
}

// Levels is a LevelSet backed by a slice.
type Levels []Layout

// Len returns the number of levels.
func (l Levels) Len() int { return len(l) }

// Layout returns level n.
func (l Levels) Layout(n int) Layout { return l[n] }

// ValidateSet checks every layout of a level set.
func ValidateSet(set LevelSet) error {
	if set == nil || set.Len() == 0 {
		return ErrEmptyLevelSet
	}
	for i := 0; i < set.Len(); i++ {
		if err := set.Layout(i).Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// BuildField turns a layout into a brick field, row by row. Each brick's
// reward is drawn from rnd when it is created.
func BuildField(l Layout, r Rules, rnd Rand) (Field, error) {
	if err := l.Validate(); err != nil {
		return Field{}, err
	}
	var bricks []Brick
	for y, row := range l.Rows {
		for x := 0; x < len(row); x++ {
			t, present, _ := brickCode(row[x])
			if !present {
				continue
			}
			bricks = append(bricks, Brick{
				Cell:   core.Pos(x, y),
				Type:   t,
				Effect: pickEffect(rnd, r.GiftChance),
			})
		}
	}
	return NewField(bricks)
}
