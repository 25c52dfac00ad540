package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI styles; the zero value means
// "no color", which the grid also uses to mean an empty cell.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)
