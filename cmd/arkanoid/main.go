// arkanoid is a brick-breaker for the terminal.
//
// Usage:
//
//	arkanoid play              - Play the game
//	arkanoid levels [file]     - List and validate a level set
//	arkanoid simulate          - Run a headless game with an autopilot paddle
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 100)
//	--seed <value>       - Set RNG seed for reproducible brick rewards
//	--config <path>      - Custom rules config YAML
//	--levels <path>      - Custom level set YAML (default: builtin levels)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-level <level>  - Log level: debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick-breaker. Steer the paddle with the mouse,
catch falling gifts and clear every level.

Available commands:
  play      - Start a game
  levels    - List and validate a level set
  simulate  - Run a headless game and print the result

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --levels ./my-levels.yaml
  arkanoid levels ./my-levels.yaml
  arkanoid simulate --seed 7 --ticks 5000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a level set YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. The returned closer releases the log
// file, if any.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, func() {}, fmt.Errorf("--log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           level,
	})
	return logger, closer, nil
}
