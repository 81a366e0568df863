package raycast

import "math"

// Background is drawn where nothing is visible.
const Background = ' '

type band struct {
	limit float64 // normalized distance upper bound (exclusive)
	glyph rune
}

// Every wall face shares this table.
var wallBands = []band{
	{0.1, '█'},
	{0.3, '▓'},
	{0.5, '▒'},
	{0.7, '░'},
	{math.Inf(1), '·'},
}

var floorBands = []band{
	{0.3, '.'},
	{0.6, ','},
}

func normalize(distance, maxDistance float64) float64 {
	return math.Min(distance/maxDistance, 1)
}

func pick(bands []band, d float64) rune {
	for _, b := range bands {
		if d < b.limit {
			return b.glyph
		}
	}
	return Background
}

// WallGlyph returns the wall character for a distance. Nearer walls use
// denser glyphs. The wall type does not change the glyph.
func WallGlyph(distance float64, _ WallType, maxDistance float64) rune {
	return pick(wallBands, normalize(distance, maxDistance))
}

// FloorGlyph returns the floor character for a distance, or Background when
// the floor is too far away to shade.
func FloorGlyph(distance, maxDistance float64) rune {
	return pick(floorBands, normalize(distance, maxDistance))
}

// Brightness maps a distance to a level from 5 (near) to 1 (far).
func Brightness(distance, maxDistance float64) int {
	d := normalize(distance, maxDistance)
	switch {
	case d < 0.2:
		return 5
	case d < 0.4:
		return 4
	case d < 0.6:
		return 3
	case d < 0.8:
		return 2
	default:
		return 1
	}
}
