package shooter

// spawnEnemy brings the first dead enemy slot to life at a random column
// on the top row. Callers check the enemy cap first.
func (g *Game) spawnEnemy() {
	id, ok := g.store.AllocateEnemy()
	if !ok {
		// activeEnemies is below the cap, so a free slot must exist.
		g.logger.Warn("no free enemy slot", "active", g.activeEnemies)
		return
	}

	e := g.store.Enemy(id)
	e.X = g.rng.Intn(g.width)
	e.Y = 0
	e.MoveDelay = e.MaxDelay
	e.Alive = true
	g.activeEnemies++

	g.logger.Debug("enemy spawned", "id", id, "x", e.X, "delay", e.MaxDelay)
}
