package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Sound   key.Binding
	Levels  key.Binding
	Gifts   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Launch, k.Left, k.Right},
		{k.Sound, k.Levels, k.Gifts},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. The mouse drives the paddle;
// arrows are a keyboard fallback.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "paddle right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space/click", "launch"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "sound"),
		),
		Levels: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "levels"),
		),
		Gifts: key.NewBinding(
			key.WithKeys("g", "G"),
			key.WithHelp("g", "gifts"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// paddleStep is how far, in play-area pixels, one arrow press moves the paddle.
const paddleStep = 16

// toggleKey returns the simulation key event for a flag binding.
func (k KeyMap) toggleKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Sound):
		return core.KeyPress('s'), true
	case key.Matches(msg, k.Levels):
		return core.KeyPress('L'), true
	case key.Matches(msg, k.Gifts):
		return core.KeyPress('G'), true
	}
	return core.Event{}, false
}
