package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleFor returns the lipgloss style for a color pair, building it on first use.
func styleFor(cache map[styleKey]lipgloss.Style, fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if style, ok := cache[k]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if code := fg.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code := bg.ANSI(); code != "" {
		style = style.Background(lipgloss.Color(code))
	}
	cache[k] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[styleKey]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(styles, start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
