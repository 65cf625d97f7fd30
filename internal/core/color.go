package core

// Color represents a foreground color for a screen cell.
// The terminal frontend maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the penguin renderer and HUD.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorBrightBlue
	ColorCyan
	ColorBrightCyan
	ColorWhite
	ColorBrightWhite
)
