package raycast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWallGlyphBands(t *testing.T) {
	tests := []struct {
		distance float64
		glyph    rune
	}{
		{0, '█'},
		{1.9, '█'},
		{2, '▓'},
		{5.9, '▓'},
		{6, '▒'},
		{9.9, '▒'},
		{10, '░'},
		{13.9, '░'},
		{14, '·'},
		{20, '·'},
		{35, '·'},
	}

	for _, tc := range tests {
		assert.Equal(t, string(tc.glyph), string(WallGlyph(tc.distance, North, 20)), "distance %v", tc.distance)
	}
}

func TestWallGlyphIgnoresFace(t *testing.T) {
	for _, d := range []float64{0.5, 3, 7, 12, 19} {
		want := WallGlyph(d, North, 20)
		for _, face := range []WallType{South, West, East} {
			assert.Equal(t, want, WallGlyph(d, face, 20), "distance %v face %s", d, face)
		}
	}
}

func TestFloorGlyphBands(t *testing.T) {
	assert.Equal(t, '.', FloorGlyph(1, 20))
	assert.Equal(t, '.', FloorGlyph(5.9, 20))
	assert.Equal(t, ',', FloorGlyph(6, 20))
	assert.Equal(t, ',', FloorGlyph(11.9, 20))
	assert.Equal(t, Background, FloorGlyph(12, 20))
	assert.Equal(t, Background, FloorGlyph(40, 20))
}

func TestBrightness(t *testing.T) {
	assert.Equal(t, 5, Brightness(0, 20))
	assert.Equal(t, 4, Brightness(4, 20))
	assert.Equal(t, 3, Brightness(8, 20))
	assert.Equal(t, 2, Brightness(12, 20))
	assert.Equal(t, 1, Brightness(16, 20))
	assert.Equal(t, 1, Brightness(100, 20))
}
