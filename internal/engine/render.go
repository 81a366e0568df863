package engine

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/raycast"
)

// nearWall is the distance below which a wall fills the capped height.
const nearWall = 0.01

// Column is the projection of one screen column.
type Column struct {
	Angle     float64
	Hit       raycast.Result
	WallStart int // first wall row
	WallEnd   int // one past the last wall row
	Glyph     rune
	Color     core.Color
}

// CastColumns casts one ray per screen column and computes the wall span for
// a frame of the given height. It returns nil for a non-positive size.
func (s *State) CastColumns(width, height int) []Column {
	if width <= 0 || height <= 0 {
		return nil
	}

	fov := s.params.FOV
	maxDist := s.params.MaxDistance
	h := float64(height)

	cols := make([]Column, width)
	for x := range cols {
		angle := s.Angle - fov/2 + (float64(x)/float64(width))*fov
		hit := raycast.Cast(s.X, s.Y, angle, s.Maze, maxDist)

		wallHeight := 2 * h
		if hit.Distance > nearWall {
			wallHeight = min(h/hit.Distance, 2*h)
		}
		start := max(0, int((h-wallHeight)/2))
		end := min(height, start+int(wallHeight))

		cols[x] = Column{
			Angle:     angle,
			Hit:       hit,
			WallStart: start,
			WallEnd:   end,
			Glyph:     raycast.WallGlyph(hit.Distance, hit.WallType, maxDist),
			Color:     core.ShadeForBrightness(raycast.Brightness(hit.Distance, maxDist)),
		}
	}
	return cols
}

// floorDistance approximates the distance of the floor seen at row.
func floorDistance(row, height int) float64 {
	half := float64(height) / 2
	p := (float64(row) - half) / half
	return 1 / max(p, 0.1)
}

// RenderInto draws the first-person view over the whole of dst.
func (s *State) RenderInto(dst *core.Screen) {
	width, height := dst.Width(), dst.Height()
	cols := s.CastColumns(width, height)
	if cols == nil {
		return
	}

	maxDist := s.params.MaxDistance
	for y := 0; y < height; y++ {
		// Floor shading only depends on the row.
		floor := raycast.Background
		if d := floorDistance(y, height); d < maxDist {
			floor = raycast.FloorGlyph(d, maxDist)
		}

		for x, col := range cols {
			switch {
			case y < col.WallStart:
				dst.SetCell(x, y, raycast.Background, core.ColorDefault)
			case y < col.WallEnd:
				dst.SetCell(x, y, col.Glyph, col.Color)
			default:
				dst.SetCell(x, y, floor, core.ColorFloor)
			}
		}
	}
}

// Render returns the view as height rows of width characters joined by
// newlines. A non-positive size renders as the empty string.
func (s *State) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	screen := core.NewScreen(width, height)
	s.RenderInto(screen)
	return screen.String()
}
