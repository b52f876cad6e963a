package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// palette maps core.Color to lipgloss styles for one renderer.
type palette struct {
	styles map[core.Color]lipgloss.Style
	// plain is set when the terminal takes no escape sequences at all.
	plain bool
}

// newPalette builds styles bound to r, so SSH sessions get their own color profile.
func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:      r.NewStyle(),
			core.ColorGray:         r.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorBrightYellow: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			core.ColorBrightCyan:   r.NewStyle().Foreground(lipgloss.Color("14")),
		},
		plain: r.ColorProfile() == termenv.Ascii,
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *core.Screen) string {
	if p.plain {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p.styles[startColor]
			if !ok {
				style = p.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
