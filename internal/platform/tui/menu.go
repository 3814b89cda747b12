package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// menuItem is one difficulty choice.
type menuItem struct {
	Preset config.DifficultyPreset
	Title  string
	Hint   string
}

var menuItems = []menuItem{
	{config.DifficultyEasy, "Easy", "7 balls, wide paddle"},
	{config.DifficultyNormal, "Normal", "5 balls, classic rules"},
	{config.DifficultyHard, "Hard", "3 balls, narrow paddle, fewer gifts"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ", "space")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel lets the player pick a difficulty before the game starts.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	levels   []string
	keys     menuKeys
	selected *config.DifficultyPreset
	quitting bool
}

// NewMenuModel creates the menu. levels are the names shown under the
// choices; the cursor starts on Normal.
func NewMenuModel(width, height int, levels []string) MenuModel {
	return MenuModel{
		cursor: 1,
		width:  width,
		height: height,
		levels: levels,
		keys:   defaultMenuKeys(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		preset := menuItems[m.cursor].Preset
		m.selected = &preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A R K A N O I D"), "A R K A N O I D", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", "", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("  %-7s %s", item.Title, hintStyle.Render(item.Hint))
		plain := fmt.Sprintf("  %-7s %s", item.Title, item.Hint)
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line[2:]
		}
		b.WriteString(centerText(line, plain, m.width))
		b.WriteString("\n")
	}

	if len(m.levels) > 0 {
		b.WriteString("\n")
		names := fmt.Sprintf("Levels: %s", strings.Join(m.levels, ", "))
		b.WriteString(centerText(names, "", m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Q: Quit", "", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m MenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// centerText centers text within width. plain is text without styling,
// used to measure it; empty means text itself is plain.
func centerText(text, plain string, width int) string {
	if plain == "" {
		plain = text
	}
	n := len([]rune(plain))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu shows the difficulty menu and returns the chosen preset. A nil
// preset means the player quit.
func RunMenu(cfg core.RuntimeConfig, levels []string) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(NewMenuModel(cfg.ScreenW, cfg.ScreenH, levels), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
