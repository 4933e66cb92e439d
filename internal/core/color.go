package core

// Color is a foreground color for a screen cell, mapped to an ANSI color by
// the terminal layer.
type Color uint8

// Card and text colors.
const (
	ColorDefault Color = iota
	ColorGray          // unmatched card
	ColorGreen         // matched card
	ColorYellow        // selected or revealed card
	ColorCyan          // keyboard cursor
	ColorWhite
	ColorBrightWhite
)

// String returns the color name, used in test failure output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGray:
		return "gray"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
