package core

// Color represents a foreground color for a screen cell.
// Frontends map these to their own palette (lipgloss or tcell).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBrightYellow
	ColorBrightCyan
)
