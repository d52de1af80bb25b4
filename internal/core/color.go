package core

// Color represents a foreground color for a screen cell. The platform
// layer maps these to ANSI 256-color codes so the arena renders the same
// over SSH.
type Color uint8

// The palette the arena draws from. Element projectiles claim the bright
// hues (fire orange, water blue, lightning yellows), terrain and corpses
// the dim ones.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
