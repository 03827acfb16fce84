package core

// Color identifies a foreground color for a screen cell.
// The platform maps these to terminal colors at render time.
type Color uint8

// Colors used by the game and the platform chrome.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
)
