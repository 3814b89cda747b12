package arkanoid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	PaddleChar   = '='
	BrickChar    = '█'
	SilverChar   = '▓'
	CrackedChar  = '▒'
	BorderVert   = '│'
	BorderHoriz  = '─'
	BorderTL     = '┌'
	BorderTR     = '┐'
	BorderBL     = '└'
	BorderBR     = '┘'
	RewardMarker = '◆'
)

// Minimum screen size that can show a playable field.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// Viewport maps play-area pixels onto a rectangle of screen cells.
type Viewport struct {
	X, Y int // Top-left cell of the play area
	W, H int // Size in cells
	Area core.Area
}

// NewViewport fits area into a screen of the given size, below the two HUD
// lines and inside a border. Cells are about twice as tall as they are wide,
// so the field is narrowed to keep its proportions.
func NewViewport(area core.Area, screenW, screenH int) Viewport {
	h := core.Max(1, screenH-4)
	w := core.Max(1, screenW-2)
	if area.Height > 0 {
		w = core.Min(w, core.Max(1, h*2*area.Width/area.Height))
	}
	return Viewport{
		X:    (screenW - w) / 2,
		Y:    3,
		W:    w,
		H:    h,
		Area: area,
	}
}

// ToScreen converts a pixel position to a screen cell.
func (v Viewport) ToScreen(p core.Position) (int, int) {
	return v.X + p.X*v.W/v.Area.Width, v.Y + p.Y*v.H/v.Area.Height
}

// ToArea converts a screen cell to the pixel at its center. Cells outside
// the viewport are clamped to the play area.
func (v Viewport) ToArea(col, row int) core.Position {
	cx := core.Clamp(col-v.X, 0, v.W-1)
	cy := core.Clamp(row-v.Y, 0, v.H-1)
	return core.Pos(
		(2*cx+1)*v.Area.Width/(2*v.W),
		(2*cy+1)*v.Area.Height/(2*v.H),
	)
}

// cells converts a pixel rectangle to screen cells, never smaller than one cell.
func (v Viewport) cells(r core.Rect) core.Rect {
	x0, y0 := v.ToScreen(core.Pos(r.X, r.Y))
	x1, y1 := v.ToScreen(core.Pos(r.Right(), r.Bottom()))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the game into dst.
func Render(g Game, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := NewViewport(g.Area, dst.Width(), dst.Height())
	renderHUD(g, dst)
	renderBorder(v, dst)
	renderBricks(g, v, dst)
	renderGifts(g, v, dst)
	renderPaddle(g, v, dst)
	renderBalls(g, v, dst)
	renderOverlay(g, dst)
}

// renderHUD draws score, reserve balls, level and the active effects.
func renderHUD(g Game, dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %s", strings.Repeat(string(BallChar), g.Extras.BallsLeft)))

	var right strings.Builder
	for _, e := range g.Extras.Effects.List() {
		right.WriteString(e.String())
		right.WriteByte(' ')
	}
	if g.Extras.Flags.Levels {
		fmt.Fprintf(&right, "Level: %d/%d", g.Extras.Level+1, g.Levels())
	}
	text := strings.TrimSpace(right.String())
	dst.DrawText(dst.Width()-len([]rune(text))-1, 0, text)

	var flags strings.Builder
	flags.WriteString(flagLabel("sound", g.Extras.Flags.Sound))
	flags.WriteString(flagLabel("levels", g.Extras.Flags.Levels))
	flags.WriteString(flagLabel("gifts", g.Extras.Flags.Gifts))
	dst.DrawTextColored(1, 1, flags.String(), core.ColorGray)
}

func flagLabel(name string, on bool) string {
	if on {
		return "[" + name + "] "
	}
	return " " + name + "  "
}

func renderBorder(v Viewport, dst *core.Screen) {
	left, right := v.X-1, v.X+v.W
	top, bottom := v.Y-1, v.Y+v.H
	for x := left + 1; x < right; x++ {
		dst.Set(x, top, BorderHoriz)
		dst.Set(x, bottom, BorderHoriz)
	}
	for y := top + 1; y < bottom; y++ {
		dst.Set(left, y, BorderVert)
		dst.Set(right, y, BorderVert)
	}
	dst.Set(left, top, BorderTL)
	dst.Set(right, top, BorderTR)
	dst.Set(left, bottom, BorderBL)
	dst.Set(right, bottom, BorderBR)
}

func renderBricks(g Game, v Viewport, dst *core.Screen) {
	for _, b := range g.Bricks.bricks {
		fill := BrickChar
		switch {
		case b.Type == BrickSilver && b.Hits > 0:
			fill = CrackedChar
		case b.Type == BrickSilver || b.Type == BrickGold:
			fill = SilverChar
		}
		cells := v.cells(b.Rect(g.rules))
		dst.FillRect(cells, fill, b.Type.Color())
		if g.Extras.Flags.Gifts && b.Effect != EffectNone {
			cx, cy := cells.Center()
			dst.SetColored(cx, cy, RewardMarker, core.ColorDefault)
		}
	}
}

func renderGifts(g Game, v Viewport, dst *core.Screen) {
	for _, gift := range g.Extras.Gifts {
		x, y := v.ToScreen(core.Pos(gift.Pos.X+g.rules.GiftSize/2, gift.Pos.Y+g.rules.GiftSize/2))
		dst.SetColored(x, y, gift.Effect.Glyph(), core.ColorPink)
	}
}

// renderPaddle draws the paddle with its bounce zones. The center turns
// cyan and shows the remaining catches while sticky.
func renderPaddle(g Game, v Viewport, dst *core.Screen) {
	p := g.Paddle
	r := g.rules
	cells := v.cells(p.Rect(r))
	cells.H = 1

	center := core.ColorWhite
	if p.Sticky() {
		center = core.ColorCyan
	}
	dst.FillRect(cells, PaddleChar, center)

	top := p.Top(r)
	zones := []struct {
		x, w int
		c    core.Color
	}{
		{p.Left(), r.OuterZone, core.ColorRed},
		{p.Left() + r.OuterZone, r.InnerZone, core.ColorPink},
		{p.Right() - r.OuterZone - r.InnerZone, r.InnerZone, core.ColorPink},
		{p.Right() - r.OuterZone, r.OuterZone, core.ColorRed},
	}
	for _, z := range zones {
		zc := v.cells(core.NewRect(z.x, top, z.w, r.PaddleHeight))
		zc.H = 1
		dst.FillRect(zc, PaddleChar, z.c)
	}

	if p.Sticky() {
		cx, _ := cells.Center()
		dst.SetColored(cx, cells.Y, rune('0'+core.Min(p.StickyLeft, 9)), core.ColorCyan)
	}
}

func renderBalls(g Game, v Viewport, dst *core.Screen) {
	for _, b := range g.Balls {
		if b.Pos.Y >= g.Area.Height {
			continue
		}
		x, y := v.ToScreen(b.Pos)
		dst.SetColored(x, y, BallChar, core.ColorWhite)
	}
}

func renderOverlay(g Game, dst *core.Screen) {
	if !g.Extras.Flags.Finished {
		if len(g.Balls) == 0 && g.Extras.BallsLeft > 0 {
			dst.DrawTextCentered(dst.Height()/2, "Click for the next ball")
		}
		return
	}
	msg := "You lost!"
	if g.Extras.Won {
		msg = "You Won!"
	}
	dst.DrawTextCentered(dst.Height()/2-1, msg)
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Final score: %d", g.Score))
}
