package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// moveItems runs one simulation step: enemies descend, then projectiles
// climb and test for hits.
func (g *Game) moveItems() {
	g.advanceEnemies()
	g.advanceProjectiles()
}

// advanceEnemies counts down each live enemy and moves it one row when its
// countdown expires. An enemy already on the last row breaches instead.
func (g *Game) advanceEnemies() {
	lastRow := g.height - 1
	for i := range g.store.enemies {
		e := &g.store.enemies[i]
		if !e.Alive {
			continue
		}

		if e.MoveDelay > 0 {
			e.MoveDelay--
		}
		if e.MoveDelay > 0 {
			continue
		}
		e.MoveDelay = e.MaxDelay

		if e.Y < lastRow {
			e.Y++
			continue
		}

		e.Alive = false
		g.activeEnemies--
		g.damage()
		g.logger.Debug("enemy reached bottom", "id", e.ID, "health", g.health)
	}
}

// advanceProjectiles moves each projectile up one row and checks it against
// the enemies on its new row. Projectiles at row 1 leave the board.
func (g *Game) advanceProjectiles() {
	for i := range g.store.projectiles {
		p := &g.store.projectiles[i]
		if !p.Active {
			continue
		}
		if p.Y <= 1 {
			p.Active = false
			continue
		}
		p.Y--
		g.collide(p)
	}
}

// collide destroys the first live enemy, in slot order, that sits on the
// projectile's row within half a sprite width of its column. The projectile
// is consumed by the hit.
func (g *Game) collide(p *Projectile) {
	for j := range g.store.enemies {
		e := &g.store.enemies[j]
		if !e.Alive || e.Y != p.Y {
			continue
		}
		if core.AbsDiff(p.X, e.X) > e.Sprite.HalfWidth() {
			continue
		}

		e.Alive = false
		g.activeEnemies--
		p.Active = false
		g.logger.Debug("enemy hit", "enemy", e.ID, "projectile", p.ID, "x", e.X, "y", e.Y)
		return
	}
}
