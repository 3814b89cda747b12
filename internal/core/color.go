package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette used by the arkanoid renderer. Brick colors follow the classic
// arcade palette.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorOrange
	ColorCyan
	ColorGreen
	ColorRed
	ColorBlue
	ColorMagenta
	ColorYellow
	ColorSilver
	ColorGold
	ColorPink
	ColorGray
)
