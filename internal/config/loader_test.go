package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseArkanoid(defaultArkanoidYAML)
	if err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("embedded defaults differ from DefaultArkanoidConfig():\n%+v\n%+v", cfg, DefaultArkanoidConfig())
	}
}

func TestLoadArkanoidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arkanoid.yaml")
	data := []byte("ball:\n  radius: 9\ngameplay:\n  reserve_balls: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid() failed: %v", err)
	}
	if cfg.Ball.Radius != 9 {
		t.Errorf("radius = %d, expected 9", cfg.Ball.Radius)
	}
	if cfg.Gameplay.ReserveBalls != 2 {
		t.Errorf("reserve balls = %d, expected 2", cfg.Gameplay.ReserveBalls)
	}
	// Untouched keys keep defaults
	if cfg.Paddle.Width != 60 {
		t.Errorf("paddle width = %d, expected default 60", cfg.Paddle.Width)
	}
}

func TestLoadArkanoidMissingFile(t *testing.T) {
	_, err := LoadArkanoid(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadArkanoidInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"zero radius", "ball:\n  radius: 0\n", ErrNonPositive},
		{"speed order", "ball:\n  slow_speed: 6\n", ErrSpeedOrder},
		{"zones too wide", "paddle:\n  outer_zone: 20\n", ErrPaddleZones},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadArkanoid(path)
			if !errors.Is(err, tc.want) {
				t.Errorf("LoadArkanoid() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestApplyArkanoidPreset(t *testing.T) {
	easy := DefaultArkanoidConfig()
	ApplyArkanoidPreset(&easy, DifficultyEasy)
	if easy.Gameplay.ReserveBalls <= DefaultArkanoidConfig().Gameplay.ReserveBalls {
		t.Error("easy preset should grant more reserve balls")
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy preset invalid: %v", err)
	}

	hard := DefaultArkanoidConfig()
	ApplyArkanoidPreset(&hard, DifficultyHard)
	if hard.Paddle.Width >= DefaultArkanoidConfig().Paddle.Width {
		t.Error("hard preset should shrink the paddle")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	normal := DefaultArkanoidConfig()
	ApplyArkanoidPreset(&normal, DifficultyNormal)
	if normal != DefaultArkanoidConfig() {
		t.Error("normal preset should not change defaults")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
}
