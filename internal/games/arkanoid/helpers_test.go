package arkanoid

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// sequence is a Rand returning a fixed, repeating list of values.
type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// plainRules returns the default rules with no brick rewards.
func plainRules() Rules {
	r := DefaultRules()
	r.GiftChance = 0
	return r
}

// row builds a 13-column layout row with a single brick code at col.
func row(col int, code byte) string {
	b := []byte("xxxxxxxxxxxxx")
	b[col] = code
	return string(b)
}

func emptyRow() string {
	return "xxxxxxxxxxxxx"
}

// newTestGame creates a game from layouts, failing the test on error.
func newTestGame(t *testing.T, r Rules, layouts ...Layout) Game {
	t.Helper()
	g, err := NewGame(DefaultArea(), r, Levels(layouts), &sequence{values: []int{0}})
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return g
}

// mustField builds a field, failing the test on error.
func mustField(t *testing.T, bricks ...Brick) Field {
	t.Helper()
	f, err := NewField(bricks)
	if err != nil {
		t.Fatalf("NewField() failed: %v", err)
	}
	return f
}

func ball(x, y, vx, vy int) Ball {
	return Ball{Pos: core.Pos(x, y), Vel: core.Vel(vx, vy), Radius: DefaultRules().BallRadius}
}
