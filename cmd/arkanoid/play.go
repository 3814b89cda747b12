package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  Mouse          - Move the paddle
  Click/Space    - Launch the ball, or bring in the next one
  Left/Right     - Move the paddle from the keyboard
  S / L / G      - Toggle sound, level progression, gifts
  R              - Restart (after the game ends)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More reserve balls, wider paddle
  normal - Classic rules
  hard   - Fewer balls, narrower paddle, fewer gifts

Examples:
  arkanoid play
  arkanoid play --difficulty hard
  arkanoid play --config ./my-arkanoid.yaml --levels ./my-levels.yaml
  arkanoid play --log-file /tmp/arkanoid.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// setup holds everything needed to create games.
type setup struct {
	cfg    config.ArkanoidConfig
	area   core.Area
	rules  arkanoid.Rules
	levels arkanoid.Levels
}

// loadSetup reads the rules config and the level set named by the flags.
func loadSetup() (setup, error) {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return setup{}, err
	}
	set, err := levels.Load(flagLevels)
	if err != nil {
		return setup{}, err
	}

	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		if preset = config.ParsePreset(flagDifficulty); preset == "" {
			return setup{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}
	return setup{cfg: cfg, levels: set}.withPreset(preset)
}

// withPreset applies a difficulty preset and derives the game rules.
func (s setup) withPreset(preset config.DifficultyPreset) (setup, error) {
	cfg := s.cfg
	config.ApplyArkanoidPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return setup{}, err
	}
	s.area = arkanoid.AreaFromConfig(cfg)
	s.rules = arkanoid.RulesFromConfig(cfg)
	return s, nil
}

// levelNames lists the level names of the set.
func (s setup) levelNames() []string {
	names := make([]string, 0, s.levels.Len())
	for _, l := range s.levels {
		names = append(names, l.Name)
	}
	return names
}

// newGame creates a game whose brick rewards are drawn from seed.
func (s setup) newGame(seed int64) (arkanoid.Game, error) {
	return arkanoid.NewGame(s.area, s.rules, s.levels, arkanoid.NewSimpleRNG(seed))
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the game; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := loadSetup()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Without --difficulty the player picks one from the menu
	if flagDifficulty == "" {
		preset, err := tui.RunMenu(cfg, s.levelNames())
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		if preset == nil {
			return nil
		}
		if s, err = s.withPreset(*preset); err != nil {
			return err
		}
	}

	// Without an audio device cues are dropped.
	var player audio.Player = audio.Nop{}
	speaker := audio.NewSpeaker()
	if err := speaker.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	} else {
		defer speaker.Close()
		player = speaker
	}

	logger.Debug("starting", "levels", s.levels.Len(), "difficulty", flagDifficulty, "fps", flagFPS)
	if err := tui.Run(s.newGame, player, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
