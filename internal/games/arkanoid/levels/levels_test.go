package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

func TestBuiltin(t *testing.T) {
	set := Builtin()
	if set.Len() != 3 {
		t.Fatalf("builtin set has %d levels, expected 3", set.Len())
	}
	for i := 0; i < set.Len(); i++ {
		l := set.Layout(i)
		if l.Width() != 13 || l.Height() != 13 {
			t.Errorf("level %d is %dx%d, expected 13x13", i+1, l.Width(), l.Height())
		}
	}

	// Builds into a playable game
	g, err := arkanoid.NewGame(arkanoid.DefaultArea(), arkanoid.DefaultRules(), set, arkanoid.NewSimpleRNG(1))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if g.Bricks.Len() != 72 {
		t.Errorf("level 1 has %d bricks, expected 72", g.Bricks.Len())
	}
	if g.Levels() != 3 {
		t.Errorf("game has %d levels, expected 3", g.Levels())
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
levels:
  - rows:
      - "x0x"
      - "898"
  - name: Second
    rows:
      - "777"
`)
	set, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("got %d levels, expected 2", set.Len())
	}
	if set[0].Name != "Level 1" {
		t.Errorf("name = %q, expected default name", set[0].Name)
	}
	if set[1].Name != "Second" {
		t.Errorf("name = %q, expected Second", set[1].Name)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no levels", "levels: []\n", arkanoid.ErrEmptyLevelSet},
		{"ragged", "levels:\n  - rows: [\"000\", \"0\"]\n", arkanoid.ErrRaggedLayout},
		{"bad code", "levels:\n  - rows: [\"0#0\"]\n", arkanoid.ErrUnknownBrickCode},
		{"no rows", "levels:\n  - name: Empty\n", arkanoid.ErrEmptyLayout},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
		})
	}

	if _, err := Parse([]byte("levels: [")); err == nil {
		t.Error("expected a decode error")
	}
}

func TestLoad(t *testing.T) {
	set, err := Load("")
	if err != nil || set.Len() != 3 {
		t.Fatalf("Load(\"\") = %d levels, %v; expected builtin set", set.Len(), err)
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("levels:\n  - rows: [\"x5x\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	set, err = Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if set.Len() != 1 || set[0].Rows[0] != "x5x" {
		t.Errorf("loaded %+v, expected one level", set)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
