package maze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	grid "github.com/vovakirdan/tui-maze/internal/maze"
)

// Minimap glyphs
const (
	mapWall  = '#'
	mapOpen  = ' '
	mapExit  = 'X'
	mapTrail = '·'
)

// Render draws the 3D view, overlays and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	viewH := dst.Height() - hudHeight
	if g.view == nil {
		g.view = core.NewScreen(dst.Width(), viewH)
	} else {
		g.view.Resize(dst.Width(), viewH)
	}
	g.state.RenderInto(g.view)
	dst.Blit(g.view, 0, 0)

	if g.showMap {
		g.drawMinimap(dst)
	}
	g.drawHUD(dst, viewH)

	switch {
	case g.escaped:
		g.drawCenteredMessage(dst, "ESCAPED!", fmt.Sprintf("Score: %d  |  Press R for a new maze", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.bannerTicks > 0:
		m := g.state.Maze
		g.drawCenteredMessage(dst, fmt.Sprintf("ESCAPED! (%d)", g.escapes), fmt.Sprintf("Next maze: %dx%d", m.Width(), m.Height()))
	}
}

// drawHUD writes the status line below the view.
func (g *Game) drawHUD(dst *core.Screen, y int) {
	dst.DrawHLine(0, y, dst.Width(), ' ')

	secs := g.Elapsed().Seconds()
	status := fmt.Sprintf(" pos %.1f,%.1f  heading %3d°  time %.1fs  score %d",
		g.state.X, g.state.Y, g.state.HeadingDegrees(), secs, g.score)
	if g.mode == ModeEndless {
		status += fmt.Sprintf("  escapes %d", g.escapes)
	}
	dst.DrawTextColored(0, y, status, core.ColorHUD)

	keys := "[m]ap [h]int [p]ause "
	if x := dst.Width() - len(keys); x > len([]rune(status)) {
		dst.DrawTextColored(x, y, keys, core.ColorHUD)
	}
}

// drawMinimap draws a window of the maze around the player in the top-right
// corner, one character per cell.
func (g *Game) drawMinimap(dst *core.Screen) {
	m := g.state.Maze

	// Inner size, bordered by a box
	innerW := core.Min(m.Width(), dst.Width()/3)
	innerH := core.Min(m.Height(), (dst.Height()-hudHeight)/2)
	if innerW < 3 || innerH < 3 {
		return
	}
	box := core.NewRect(dst.Width()-innerW-2, 0, innerW+2, innerH+2)

	// Window origin in maze cells, centered on the player and kept inside the maze
	cell := g.state.Cell()
	originX := core.Clamp(cell.X-innerW/2, 0, m.Width()-innerW)
	originY := core.Clamp(cell.Y-innerH/2, 0, m.Height()-innerH)

	var trail map[grid.Point]bool
	if g.showHint {
		path := g.hintPath()
		trail = make(map[grid.Point]bool, len(path))
		for _, p := range path {
			trail[p] = true
		}
	}

	exit := m.Exit()
	for y := 0; y < innerH; y++ {
		for x := 0; x < innerW; x++ {
			p := grid.Point{X: originX + x, Y: originY + y}
			r, c := rune(mapOpen), core.ColorMinimap
			switch {
			case m.IsWall(p.X, p.Y):
				r = mapWall
			case p == exit:
				r, c = mapExit, core.ColorExit
			case trail[p]:
				r, c = mapTrail, core.ColorHint
			}
			dst.SetCell(box.X+1+x, box.Y+1+y, r, c)
		}
	}

	dst.DrawBox(box)
	dst.SetCell(box.X+1+cell.X-originX, box.Y+1+cell.Y-originY, headingArrow(g.state.Angle), core.ColorPlayer)
}

// headingArrow picks the arrow closest to the heading. Angles grow
// clockwise on screen since y points down.
func headingArrow(angle float64) rune {
	arrows := [4]rune{'→', '↓', '←', '↑'}
	i := int(math.Round(angle/(math.Pi/2))) % 4
	return arrows[i]
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
