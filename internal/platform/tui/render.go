package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Styles maps core.Color to lipgloss styles for one output.
type Styles struct {
	cells  map[core.Color]lipgloss.Style
	Footer lipgloss.Style
	Notice lipgloss.Style
}

// NewStyles builds styles bound to the given renderer, so SSH sessions get
// their own color profile. A nil renderer uses the process default.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:     r.NewStyle(),
			core.ColorRed:         r.NewStyle().Foreground(lipgloss.Color("9")),
			core.ColorGreen:       r.NewStyle().Foreground(lipgloss.Color("10")),
			core.ColorYellow:      r.NewStyle().Foreground(lipgloss.Color("11")),
			core.ColorGray:        r.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorBrightWhite: r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		},
		Footer: r.NewStyle().Foreground(lipgloss.Color("241")),
		Notice: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st.cells[startColor]
			if !ok {
				style = st.cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
