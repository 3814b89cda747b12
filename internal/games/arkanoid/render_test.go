package arkanoid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(DefaultArea(), 80, 24)
	if v.W <= 0 || v.H <= 0 || v.W > 78 {
		t.Fatalf("viewport = %+v", v)
	}

	for row := v.Y; row < v.Y+v.H; row++ {
		for col := v.X; col < v.X+v.W; col++ {
			x, y := v.ToScreen(v.ToArea(col, row))
			if x != col || y != row {
				t.Fatalf("cell (%d,%d) maps back to (%d,%d)", col, row, x, y)
			}
		}
	}

	// Outside cells clamp to the edge of the field
	if v.ToArea(-5, -5) != v.ToArea(v.X, v.Y) {
		t.Error("top-left outside cell should clamp to the first cell")
	}
	if v.ToArea(200, 200) != v.ToArea(v.X+v.W-1, v.Y+v.H-1) {
		t.Error("bottom-right outside cell should clamp to the last cell")
	}
}

func TestRenderField(t *testing.T) {
	g := newTestGame(t, plainRules(), singleBrick('3'))
	screen := core.NewScreen(80, 24)
	Render(g, screen)

	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Balls: ●●●●●", "Level: 1/1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screen.Row(1), "[levels]") {
		t.Errorf("flags row %q, expected levels enabled", screen.Row(1))
	}

	v := NewViewport(g.Area, 80, 24)
	if got := screen.Get(v.X-1, v.Y-1); got != BorderTL {
		t.Errorf("border corner = %q", got)
	}

	b := g.Bricks.Bricks()[0]
	cells := v.cells(b.Rect(g.rules))
	cell := screen.GetCell(cells.X, cells.Y)
	if cell.Rune != BrickChar || cell.Color != BrickGreen.Color() {
		t.Errorf("brick cell = %+v", cell)
	}

	x, y := v.ToScreen(g.Balls[0].Pos)
	if screen.Get(x, y) != BallChar {
		t.Errorf("expected ball at (%d,%d)", x, y)
	}
	if !strings.ContainsRune(screen.Row(y), PaddleChar) {
		t.Errorf("expected paddle on row %d: %q", y, screen.Row(y))
	}
}

func TestRenderOverlay(t *testing.T) {
	g := newTestGame(t, plainRules(), singleBrick('3'))
	screen := core.NewScreen(80, 24)

	g.Balls = BallSet{}
	Render(g, screen)
	if !strings.Contains(screen.String(), "Click for the next ball") {
		t.Error("expected the next-ball prompt")
	}

	g.Extras.Flags.Finished = true
	g.Extras.Won = true
	g.Score = 42
	Render(g, screen)
	out := screen.String()
	if !strings.Contains(out, "You Won!") || !strings.Contains(out, "Final score: 42") {
		t.Errorf("missing win overlay:\n%s", out)
	}

	g.Extras.Won = false
	Render(g, screen)
	if !strings.Contains(screen.String(), "You lost!") {
		t.Error("missing loss overlay")
	}
}

func TestRenderSmallScreen(t *testing.T) {
	g := newTestGame(t, plainRules(), singleBrick('3'))
	screen := core.NewScreen(MinScreenW-1, MinScreenH+2)
	Render(g, screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning:\n%s", screen.String())
	}
}
