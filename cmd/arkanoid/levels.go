package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [file]",
	Short: "List and validate a level set",
	Long: `Loads a level set, validates every layout and prints a summary.
Without a file the builtin levels are shown.

Examples:
  arkanoid levels
  arkanoid levels ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	path := flagLevels
	if len(args) == 1 {
		path = args[0]
	}

	set, err := levels.Load(path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "builtin"
	}
	printLevels(cmd.OutOrStdout(), source, set)
	return nil
}

// printLevels writes one line per level: name, size and brick counts.
func printLevels(w io.Writer, source string, set arkanoid.Levels) {
	fmt.Fprintf(w, "Level set: %s (%d levels)\n\n", source, set.Len())

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range set {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintf(w, "  %-3s  %-*s  %-5s  %6s  %s\n", "#", maxNameLen, "Name", "Size", "Bricks", "Solid")
	fmt.Fprintf(w, "  %-3s  %-*s  %-5s  %6s  %s\n", "-", maxNameLen, "----", "----", "------", "-----")

	for i, l := range set {
		bricks, solid := countBricks(l)
		size := fmt.Sprintf("%dx%d", l.Width(), l.Height())
		fmt.Fprintf(w, "  %-3d  %-*s  %-5s  %6d  %d\n", i+1, maxNameLen, l.Name, size, bricks, solid)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "All levels are valid.")
}

// countBricks returns how many bricks a layout places and how many of them
// are gold.
func countBricks(l arkanoid.Layout) (bricks, solid int) {
	for _, row := range l.Rows {
		bricks += len(row) - strings.Count(row, "x") - strings.Count(row, "X") - strings.Count(row, ".")
		solid += strings.Count(row, "9")
	}
	return bricks, solid
}
