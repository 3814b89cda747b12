package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
)

// recorder is an audio.Player that remembers what it was asked to play.
type recorder struct {
	cues []arkanoid.Cue
}

func (r *recorder) Play(c arkanoid.Cue) {
	r.cues = append(r.cues, c)
}

func newTestModel(t *testing.T, player *recorder) Model {
	t.Helper()
	factory := func(seed int64) (arkanoid.Game, error) {
		return arkanoid.NewGame(arkanoid.DefaultArea(), arkanoid.DefaultRules(), levels.Builtin(), arkanoid.NewSimpleRNG(seed))
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	m, err := NewModel(factory, player, nil, cfg)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, &recorder{})
	g := m.Game()
	if len(g.Balls) != 1 || !g.Balls.Resting() {
		t.Errorf("expected one resting ball, got %+v", g.Balls)
	}
	if m.keys.Restart.Enabled() {
		t.Error("restart should be disabled while playing")
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestNewModelFactoryError(t *testing.T) {
	boom := errors.New("boom")
	factory := func(int64) (arkanoid.Game, error) { return arkanoid.Game{}, boom }
	if _, err := NewModel(factory, nil, nil, core.DefaultConfig()); !errors.Is(err, boom) {
		t.Errorf("NewModel() error = %v, expected %v", err, boom)
	}
}

func TestLaunchKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeySpace}, runes(" ")} {
		m := newTestModel(t, &recorder{})
		m, _ = send(m, msg)
		if b := m.Game().Balls[0]; b.Vel.Y >= 0 {
			t.Errorf("%q: ball vel = %+v, expected launched upwards", msg.String(), b.Vel)
		}
	}
}

func TestArrowKeysMovePaddle(t *testing.T) {
	m := newTestModel(t, &recorder{})
	x := m.Game().Paddle.Pos.X

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Game().Paddle.Pos.X; got != x+paddleStep {
		t.Errorf("paddle x = %d, expected %d", got, x+paddleStep)
	}
	if got := m.Game().Balls[0].Pos.X; got != x+paddleStep {
		t.Errorf("resting ball x = %d, expected it to follow the paddle", got)
	}

	m, _ = send(m, runes("h"))
	m, _ = send(m, runes("h"))
	if got := m.Game().Paddle.Pos.X; got != x-paddleStep {
		t.Errorf("paddle x = %d, expected %d", got, x-paddleStep)
	}
}

func TestToggleKeys(t *testing.T) {
	m := newTestModel(t, &recorder{})
	flags := m.Game().Extras.Flags

	m, _ = send(m, runes("s"))
	m, _ = send(m, runes("L"))
	m, _ = send(m, runes("g"))
	got := m.Game().Extras.Flags
	if got.Sound == flags.Sound || got.Levels == flags.Levels || got.Gifts == flags.Gifts {
		t.Errorf("flags = %+v, expected all toggled from %+v", got, flags)
	}
}

func TestMouse(t *testing.T) {
	m := newTestModel(t, &recorder{})
	v := arkanoid.NewViewport(m.Game().Area, m.screen.Width(), m.screen.Height())

	// Far right is clamped so the paddle stays inside the field
	m, _ = send(m, tea.MouseMsg{X: v.X + v.W - 1, Y: v.Y, Action: tea.MouseActionMotion})
	g := m.Game()
	if want := g.Area.Width - g.Paddle.Width/2; g.Paddle.Pos.X != want {
		t.Errorf("paddle x = %d, expected %d", g.Paddle.Pos.X, want)
	}

	m, _ = send(m, tea.MouseMsg{X: v.X, Y: v.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	g = m.Game()
	if g.Paddle.Pos.X != g.Paddle.Width/2 {
		t.Errorf("paddle x = %d, expected the left edge", g.Paddle.Pos.X)
	}
	if g.Balls[0].Vel.Y >= 0 {
		t.Error("left click should launch the ball")
	}
}

func TestTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, &recorder{})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	y := m.Game().Balls[0].Pos.Y

	m, cmd := send(m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.Game().Balls[0].Pos.Y; got >= y {
		t.Errorf("ball y = %d, expected it to rise from %d", got, y)
	}
}

func TestSoundCuesReachPlayer(t *testing.T) {
	player := &recorder{}
	m := newTestModel(t, player)
	m.game.Balls = arkanoid.BallSet{{Pos: core.Pos(6, 300), Vel: core.Vel(-2, 0), Radius: 7}}

	m, _ = send(m, TickMsg{})
	if len(player.cues) != 0 {
		t.Fatalf("cues = %v with sound off", player.cues)
	}

	m.game.Balls = arkanoid.BallSet{{Pos: core.Pos(6, 300), Vel: core.Vel(-2, 0), Radius: 7}}
	m, _ = send(m, runes("s"))
	_, _ = send(m, TickMsg{})
	if len(player.cues) != 1 || player.cues[0] != arkanoid.CueWallOrBrick {
		t.Errorf("cues = %v, expected [wall]", player.cues)
	}
}

func TestRestartAfterFinish(t *testing.T) {
	m := newTestModel(t, &recorder{})

	// Restart is ignored while the game runs
	before := m.Game().Snapshot()
	m, _ = send(m, runes("r"))
	if after := m.Game().Snapshot(); after.Hash() != before.Hash() {
		t.Fatal("restart changed a running game")
	}

	m.game.Balls = arkanoid.BallSet{}
	m.game.Extras.BallsLeft = 0
	m, _ = send(m, TickMsg{})
	if m.Game().Phase() != arkanoid.PhaseFinished {
		t.Fatal("expected the game to be lost")
	}
	if !m.keys.Restart.Enabled() {
		t.Fatal("restart should be enabled after the game ends")
	}
	if !strings.Contains(m.View(), "You lost!") {
		t.Error("view should show the loss")
	}

	m, _ = send(m, runes("r"))
	if m.Game().Phase() != arkanoid.PhaseRunning || len(m.Game().Balls) != 1 {
		t.Error("restart should start a new game")
	}
	if m.keys.Restart.Enabled() {
		t.Error("restart should be disabled again")
	}
}

func TestWindowResizeAndView(t *testing.T) {
	m := newTestModel(t, &recorder{})
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "launch") {
		t.Error("view should contain the help line")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &recorder{})
	m, cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Score", core.ColorYellow)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "Score") || !strings.Contains(lines[1], "ok") {
		t.Errorf("unexpected output %q", out)
	}
}
