package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
	}{
		{"default", nil, config.DifficultyNormal},
		{"up", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard},
		{"clamped", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}}, config.DifficultyHard},
		{"vim keys", []tea.KeyMsg{runes("k"), runes("k"), runes("j")}, config.DifficultyNormal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(80, 24, nil)
			for _, k := range tc.keys {
				m, _ = m.Update(k)
			}
			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Error("selecting should quit the menu")
			}
			got := m.(MenuModel).Selected()
			if got == nil || *got != tc.want {
				t.Errorf("Selected() = %v, expected %s", got, tc.want)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = NewMenuModel(80, 24, nil)
	m, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if m.(MenuModel).Selected() != nil {
		t.Error("quitting should not select a preset")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(80, 24, []string{"Columns", "Fortress"})
	view := m.View()
	for _, want := range []string{"A R K A N O I D", "Easy", "Normal", "Hard", "Levels: Columns, Fortress"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", "", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", "", 4); got != "abcdef" {
		t.Errorf("centerText() = %q, expected text unchanged", got)
	}
}
