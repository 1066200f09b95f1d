// Package shooter implements a vertical shooter on a character grid.
// Enemies descend from the top row at individual speeds; the player moves
// along the bottom and fires projectiles upward. An enemy that reaches the
// bottom row costs one health point, and the game ends at zero health.
//
// The game is driven by two entry points, Tick and Input, which the caller
// must never invoke concurrently. All drawing goes through a core.Surface.
package shooter

import (
	"io"
	"math/rand"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DeathMessage is shown centered on the board once health reaches zero.
const DeathMessage = "You Died!"

// palette holds the resolved colors for each kind of entity.
type palette struct {
	player     core.Color
	enemy      core.Color
	projectile core.Color
	health     core.Color
	death      core.Color
	background core.Color
}

// Game is the complete engine state: player, enemy and projectile slots,
// tick pacing, health and the seeded RNG.
type Game struct {
	width  int
	height int
	dst    core.Surface
	logger *log.Logger

	store  *EntityStore
	player Player

	tickCount     int // Ticks since the last simulation step
	tickDelay     int // Ticks per simulation step
	ticks         int // Tick calls received
	fired         int // Projectiles fired with the fire key
	activeEnemies int
	health        int
	minDelay      int
	maxDelay      int
	rng           *rand.Rand
	initialized   bool

	keys   keyBindings
	colors palette
	warned map[string]bool // Sprite diagnostics already logged
}

// New creates a game drawing onto dst with the board geometry in rt.
// A nil logger discards diagnostics.
func New(rt core.RuntimeConfig, cfg config.ShooterConfig, dst core.Surface, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tickDelay := cfg.Display.TickDelay
	if tickDelay < 1 {
		tickDelay = 1
	}

	return &Game{
		width:  rt.ScreenW,
		height: rt.ScreenH,
		dst:    dst,
		logger: logger,
		store:  NewEntityStore(rt.ScreenH, Sprite(cfg.Enemies.Sprite), firstRune(cfg.Projectile.Glyph, '*')),
		player: Player{
			X:      rt.ScreenW / 2,
			Y:      rt.ScreenH - 2,
			Sprite: Sprite(cfg.Player.Sprite),
		},
		tickDelay: tickDelay,
		health:    cfg.Player.Health,
		minDelay:  cfg.Enemies.MinDelay,
		maxDelay:  cfg.Enemies.MaxDelay,
		rng:       rand.New(rand.NewSource(rt.Seed)),
		keys:      newKeyBindings(cfg.Keys),
		colors: palette{
			player:     core.ParseColor(cfg.Player.Color),
			enemy:      core.ParseColor(cfg.Enemies.Color),
			projectile: core.ParseColor(cfg.Projectile.Color),
			health:     core.ColorGreen,
			death:      core.ColorRed,
			background: core.ColorBlack,
		},
		warned: make(map[string]bool),
	}
}

// initialize runs once, on the first Tick or Input.
// It stamps slot ids and gives every enemy slot its own descent speed.
func (g *Game) initialize() {
	g.store.assignIDs()
	for i := range g.store.enemies {
		g.store.enemies[i].MaxDelay = g.randomDelay()
	}
	g.initialized = true
	g.logger.Debug("game initialized",
		"width", g.width,
		"height", g.height,
		"health", g.health,
		"projectile_slots", len(g.store.projectiles),
	)
}

// randomDelay picks a delay uniformly from [minDelay, maxDelay].
func (g *Game) randomDelay() int {
	if g.maxDelay <= g.minDelay {
		return core.Max(g.minDelay, 1)
	}
	return g.minDelay + g.rng.Intn(g.maxDelay-g.minDelay+1)
}

// Tick advances the game by one driver tick.
// Every tickDelay ticks it runs a simulation step: spawn, clear, move, draw.
// Once dead it only redraws the death screen.
func (g *Game) Tick() {
	if !g.initialized {
		g.initialize()
	}
	g.ticks++

	if g.Dead() {
		g.dst.Clear()
		g.drawDeathScreen()
		return
	}

	g.tickCount++
	if g.tickCount < g.tickDelay {
		return
	}
	g.tickCount = 0

	if g.activeEnemies < EnemySlots {
		g.spawnEnemy()
	}
	g.dst.Clear()
	g.moveItems()
	g.draw()
}

// damage removes one health point, never going below zero.
func (g *Game) damage() {
	if g.health == 0 {
		return
	}
	g.health--
	if g.health == 0 {
		g.logger.Info("player died", "ticks", g.ticks, "fired", g.fired)
	}
}

// Dead reports whether health has reached zero.
func (g *Game) Dead() bool {
	return g.health == 0
}

// Health returns the remaining health.
func (g *Game) Health() int {
	return g.health
}

// ActiveEnemies returns the number of live enemies.
func (g *Game) ActiveEnemies() int {
	return g.activeEnemies
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Enemies returns a snapshot of every enemy slot.
func (g *Game) Enemies() [EnemySlots]Enemy {
	return g.store.enemies
}

// Projectiles returns a snapshot of every projectile slot.
func (g *Game) Projectiles() []Projectile {
	out := make([]Projectile, len(g.store.projectiles))
	copy(out, g.store.projectiles)
	return out
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Health:        g.health,
		ActiveEnemies: g.activeEnemies,
		Fired:         g.fired,
		Ticks:         g.ticks,
		Dead:          g.Dead(),
	}
}

// firstRune returns the first rune of s, or def when s is empty.
func firstRune(s string, def rune) rune {
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
