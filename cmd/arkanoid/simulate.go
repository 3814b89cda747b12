package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot paddle",
	Long: `Plays a game without a terminal UI. The paddle follows the lowest
ball and launches whenever a ball rests on it. Prints the final score and
the state hash, which is identical for identical seeds and flags.

Examples:
  arkanoid simulate --seed 7
  arkanoid simulate --seed 7 --ticks 20000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := loadSetup()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := s.newGame(seed)
	if err != nil {
		return err
	}
	logger.Info("simulating", "seed", seed, "levels", g.Levels(), "ticks", flagTicks)

	g, ticks := simulate(g, flagTicks)
	printResult(cmd.OutOrStdout(), g, ticks)
	return nil
}

// simulate drives g with the autopilot until it finishes or maxTicks pass.
// It returns the final game and the number of ticks played.
func simulate(g arkanoid.Game, maxTicks int) (arkanoid.Game, int) {
	ticks := 0
	for ticks < maxTicks && g.Phase() != arkanoid.PhaseFinished {
		for _, ev := range autopilot(g) {
			g, _ = g.Handle(ev)
		}
		g, _ = g.Tick()
		ticks++
	}
	return g, ticks
}

// autopilot returns the input a player would give before the next tick:
// follow the lowest ball and press when nothing is in flight.
func autopilot(g arkanoid.Game) []core.Event {
	if len(g.Balls) == 0 || g.Balls.Resting() {
		return []core.Event{core.PointerPress()}
	}

	lowest := g.Balls[0]
	for _, b := range g.Balls[1:] {
		if b.Pos.Y > lowest.Pos.Y {
			lowest = b
		}
	}
	return []core.Event{core.PointerMove(lowest.Pos.X, g.Paddle.Pos.Y)}
}

func printResult(w io.Writer, g arkanoid.Game, ticks int) {
	snap := g.Snapshot()
	result := "running"
	switch {
	case g.Phase() == arkanoid.PhaseFinished && g.Extras.Won:
		result = "won"
	case g.Phase() == arkanoid.PhaseFinished:
		result = "lost"
	}
	fmt.Fprintf(w, "Result:  %s\n", result)
	fmt.Fprintf(w, "Ticks:   %d\n", ticks)
	fmt.Fprintf(w, "Score:   %d\n", g.Score)
	fmt.Fprintf(w, "Level:   %d/%d\n", g.Extras.Level+1, g.Levels())
	fmt.Fprintf(w, "Balls:   %d in play, %d in reserve\n", len(g.Balls), g.Extras.BallsLeft)
	fmt.Fprintf(w, "Hash:    %016x\n", snap.Hash())
}
