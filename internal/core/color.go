package core

// Color represents a foreground color for a screen cell or a draw tint.
// Uses ANSI 256-color codes for terminal compatibility; the window frontend
// maps the same values to RGBA.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// RGBA returns an 8-bit RGBA approximation of the color.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorRed:
		return 205, 49, 49, 255
	case ColorGreen:
		return 13, 188, 121, 255
	case ColorYellow:
		return 229, 229, 16, 255
	case ColorBlue:
		return 36, 114, 200, 255
	case ColorMagenta:
		return 188, 63, 188, 255
	case ColorCyan:
		return 17, 168, 205, 255
	case ColorBrightRed:
		return 241, 76, 76, 255
	case ColorBrightGreen:
		return 35, 209, 139, 255
	case ColorBrightYellow:
		return 245, 245, 67, 255
	case ColorBrightBlue:
		return 59, 142, 234, 255
	case ColorBrightMagenta:
		return 214, 112, 214, 255
	case ColorBrightCyan:
		return 41, 184, 219, 255
	case ColorBrightWhite:
		return 255, 255, 255, 255
	case ColorOrange:
		return 255, 135, 0, 255
	case ColorGray:
		return 138, 138, 138, 255
	case ColorBlack:
		return 0, 0, 0, 255
	default:
		return 229, 229, 229, 255
	}
}
