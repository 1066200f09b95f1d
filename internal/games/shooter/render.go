package shooter

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// draw renders the health readout and every live entity.
// The surface is expected to be cleared already.
func (g *Game) draw() {
	bg := g.colors.background
	g.dst.DrawNumber(g.health, 0, 0, g.colors.health, bg)

	for i := range g.store.enemies {
		e := &g.store.enemies[i]
		if e.Alive {
			g.drawSprite("enemy", e.Sprite, e.X, e.Y, g.colors.enemy)
		}
	}

	g.drawSprite("player", g.player.Sprite, g.player.X, g.player.Y, g.colors.player)

	for i := range g.store.projectiles {
		p := &g.store.projectiles[i]
		if p.Active {
			g.dst.DrawCell(p.Glyph, p.X, p.Y, g.colors.projectile, bg)
		}
	}
}

// redraw clears the surface and draws the current state.
func (g *Game) redraw() {
	g.dst.Clear()
	g.draw()
}

// drawSprite draws s centered on column x, clipping glyphs that fall off
// either edge. Even-length sprites are skipped and reported once.
func (g *Game) drawSprite(kind string, s Sprite, x, y int, fg core.Color) {
	if !s.Valid() {
		if !g.warned[kind] {
			g.warned[kind] = true
			g.logger.Warn("sprite has no middle glyph, not drawing it", "kind", kind, "sprite", string(s), "len", len(s))
		}
		return
	}

	left := x - s.HalfWidth()
	for i, r := range s {
		cx := left + i
		if cx < 0 || cx >= g.width {
			continue
		}
		g.dst.DrawCell(r, cx, y, fg, g.colors.background)
	}
}

// drawDeathScreen centers DeathMessage on the board.
func (g *Game) drawDeathScreen() {
	x := (g.width - utf8.RuneCountInString(DeathMessage)) / 2
	if x < 0 {
		x = 0
	}
	y := g.height / 2
	i := 0
	for _, r := range DeathMessage {
		g.dst.DrawCell(r, x+i, y, g.colors.death, g.colors.background)
		i++
	}
}
