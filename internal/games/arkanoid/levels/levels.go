// Package levels loads arkanoid level sets from YAML.
//
// A level file lists layouts in play order:
//
//	levels:
//	  - name: First
//	    rows:
//	      - "x777x090x777x"
//	      - "x000x888x000x"
//
// Layouts are validated at load time; a malformed file never reaches the
// simulation.
package levels

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

//go:embed builtin.yaml
var builtinYAML []byte

type file struct {
	Levels []arkanoid.Layout `yaml:"levels"`
}

// Builtin returns the level set shipped with the game.
func Builtin() arkanoid.Levels {
	set, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: builtin set invalid: %v", err))
	}
	return set
}

// Load reads a level set from path. An empty path selects the builtin set.
func Load(path string) (arkanoid.Levels, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes and validates a level set.
func Parse(data []byte) (arkanoid.Levels, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	set := arkanoid.Levels(f.Levels)
	if err := arkanoid.ValidateSet(set); err != nil {
		return nil, err
	}
	for i := range set {
		if set[i].Name == "" {
			set[i].Name = fmt.Sprintf("Level %d", i+1)
		}
	}
	return set, nil
}
