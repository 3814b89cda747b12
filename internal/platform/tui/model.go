package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/audio"
)

// NewGameFunc creates a fresh game. It is called at start and on restart.
type NewGameFunc func(seed int64) (arkanoid.Game, error)

// Model is the Bubble Tea model hosting one arkanoid match.
type Model struct {
	game     arkanoid.Game
	newGame  NewGameFunc
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	player   audio.Player
	logger   *log.Logger
	err      error
	quitting bool
}

// NewModel creates the model and its first game.
func NewModel(newGame NewGameFunc, player audio.Player, logger *log.Logger, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := newGame(cfg.Seed)
	if err != nil {
		return Model{}, err
	}
	logger.Info("game started", "seed", cfg.Seed, "levels", game.Levels())

	return Model{
		game:    game,
		newGame: newGame,
		screen:  core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		player:  player,
		logger:  logger,
	}, nil
}

// screenRows leaves the last terminal row for the help line.
func screenRows(h int) int {
	return max(1, h-1)
}

// Game returns the current game value.
func (m Model) Game() arkanoid.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m = m.apply(core.Tick())
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// apply feeds one event to the game and carries out its intents.
func (m Model) apply(ev core.Event) Model {
	prev := m.game
	next, in := m.game.Handle(ev)
	m.game = next

	for _, cue := range in.Cues {
		m.player.Play(cue)
	}

	if next.Extras.Level != prev.Extras.Level {
		m.logger.Info("level advanced", "level", next.Extras.Level+1, "score", next.Score)
	}
	if next.Phase() == arkanoid.PhaseFinished && prev.Phase() != arkanoid.PhaseFinished {
		snap := next.Snapshot()
		m.logger.Info("game finished", "won", next.Extras.Won, "score", next.Score, "hash", snap.Hash())
		m.keys.Restart.SetEnabled(true)
	}
	if ev.Kind == core.EventKeyPress && in.Render {
		m.logger.Debug("flags changed", "flags", fmt.Sprintf("%+v", next.Extras.Flags))
	}
	return m
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Restart):
		return m.restart(), nil

	case key.Matches(msg, m.keys.Launch):
		m = m.apply(core.PointerPress())

	case key.Matches(msg, m.keys.Left):
		m = m.apply(core.PointerMove(m.game.Paddle.Pos.X-paddleStep, m.game.Paddle.Pos.Y))

	case key.Matches(msg, m.keys.Right):
		m = m.apply(core.PointerMove(m.game.Paddle.Pos.X+paddleStep, m.game.Paddle.Pos.Y))

	default:
		if ev, ok := m.keys.toggleKey(msg); ok {
			m = m.apply(ev)
		}
	}
	return m, nil
}

// handleMouse maps terminal cells to play-area pixels. Motion moves the
// paddle; a left click also launches.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	v := arkanoid.NewViewport(m.game.Area, m.screen.Width(), m.screen.Height())
	p := v.ToArea(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m = m.apply(core.PointerMove(p.X, p.Y))
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m = m.apply(core.PointerMove(p.X, p.Y))
			m = m.apply(core.PointerPress())
		}
	}
	return m, nil
}

// restart replaces a finished game with a new one on a fresh seed.
func (m Model) restart() Model {
	if m.game.Phase() != arkanoid.PhaseFinished {
		return m
	}
	m.config.Seed = time.Now().UnixNano()
	game, err := m.newGame(m.config.Seed)
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		m.err = err
		return m
	}
	m.game = game
	m.keys.Restart.SetEnabled(false)
	m.logger.Info("game restarted", "seed", m.config.Seed)
	return m
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	arkanoid.Render(m.game, m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("arkanoid_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	arkanoid.Render(m.game, m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(newGame NewGameFunc, player audio.Player, logger *log.Logger, cfg core.RuntimeConfig) error {
	model, err := NewModel(newGame, player, logger, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a button held
	)

	_, err = p.Run()
	return err
}
