package core

// Color is a logical foreground color of a screen cell.
// The render package maps it to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
)
