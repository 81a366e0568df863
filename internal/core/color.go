package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for maze elements.
// The Shade colors form a brightness ramp from darkest to brightest and are
// used for distance shading of walls and floor.
const (
	ColorDefault Color = iota
	ColorShade1
	ColorShade2
	ColorShade3
	ColorShade4
	ColorShade5
	ColorFloor
	ColorHUD
	ColorMinimap
	ColorPlayer
	ColorExit
	ColorHint
)

// ShadeForBrightness maps a brightness level (1 = dark, 5 = bright) to a shade color.
// Levels outside the range are clamped.
func ShadeForBrightness(level int) Color {
	switch Clamp(level, 1, 5) {
	case 1:
		return ColorShade1
	case 2:
		return ColorShade2
	case 3:
		return ColorShade3
	case 4:
		return ColorShade4
	default:
		return ColorShade5
	}
}
