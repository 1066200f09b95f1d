// Package tcellterm drives the shooter on a tcell screen, writing cells
// directly instead of going through a string renderer.
package tcellterm

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Surface adapts a tcell.Screen to core.Surface.
// Writes are limited to the board rectangle at the screen origin.
type Surface struct {
	screen tcell.Screen
	width  int
	height int
}

// NewSurface creates a surface covering the top-left width x height cells of screen.
func NewSurface(screen tcell.Screen, width, height int) *Surface {
	return &Surface{
		screen: screen,
		width:  width,
		height: height,
	}
}

// Clear blanks the board area.
func (s *Surface) Clear() {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// DrawCell writes one glyph. Out-of-bounds writes are dropped.
func (s *Surface) DrawCell(glyph rune, x, y int, fg, bg core.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.screen.SetContent(x, y, glyph, nil, style(fg, bg))
}

// DrawNumber writes value in decimal starting at (x, y).
func (s *Surface) DrawNumber(value, x, y int, fg, bg core.Color) {
	for i, r := range strconv.Itoa(value) {
		s.DrawCell(r, x+i, y, fg, bg)
	}
}

// style converts a color pair to a tcell style.
func style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

// color maps a core color onto the terminal's 256-color palette.
func color(c core.Color) tcell.Color {
	n, err := strconv.Atoi(c.ANSI())
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}

var _ core.Surface = (*Surface)(nil)
