package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the playfield and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorBrightWhite
	ColorBrightCyan
	ColorGray
)
