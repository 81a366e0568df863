package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// The shade ramp runs over the 256-color grayscale from dark to white.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorShade1:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorShade2:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	core.ColorShade3:  lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	core.ColorShade4:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorShade5:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorFloor:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")),
	core.ColorMinimap: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorExit:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorHint:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
