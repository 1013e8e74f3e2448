package core

// Color is a palette entry for canvas drawing.
// Hosts map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

// Palette used by the scenes.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorYellow
	ColorCyan
	ColorGreen
	ColorRed
)
