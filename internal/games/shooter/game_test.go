package shooter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// newTestGame builds an initialized 80x25 game with a fixed seed.
// mutate, when non-nil, edits the default config first.
func newTestGame(t *testing.T, mutate func(*config.ShooterConfig)) (*Game, *core.Screen, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	var buf bytes.Buffer
	logger := log.New(&buf)
	screen := core.NewScreen(cfg.Display.Width, cfg.Display.Height)
	g := New(cfg.Runtime(1), cfg, screen, logger)
	g.initialize()
	return g, screen, &buf
}

// placeEnemy brings slot id to life at (x, y) with the given delay,
// keeping the active count consistent.
func placeEnemy(g *Game, id, x, y, delay int) *Enemy {
	e := g.store.Enemy(id)
	e.X, e.Y = x, y
	e.MaxDelay = delay
	e.MoveDelay = delay
	if !e.Alive {
		e.Alive = true
		g.activeEnemies++
	}
	return e
}

// slowEnemies keeps spawned enemies on the top row for the whole test.
func slowEnemies(c *config.ShooterConfig) {
	c.Enemies.MinDelay = 1000
	c.Enemies.MaxDelay = 1000
}

func TestNewGame(t *testing.T) {
	g, _, _ := newTestGame(t, nil)

	if g.Health() != 10 {
		t.Errorf("Health() = %d, expected 10", g.Health())
	}
	if g.ActiveEnemies() != 0 {
		t.Errorf("ActiveEnemies() = %d, expected 0", g.ActiveEnemies())
	}
	p := g.Player()
	if p.X != 40 || p.Y != 23 {
		t.Errorf("player at (%d, %d), expected (40, 23)", p.X, p.Y)
	}
	if string(p.Sprite) != `/|\` {
		t.Errorf("player sprite = %q", string(p.Sprite))
	}
	if len(g.Projectiles()) != 25 {
		t.Errorf("expected 25 projectile slots, got %d", len(g.Projectiles()))
	}
	if g.Dead() {
		t.Error("new game should not be dead")
	}
}

func TestNilLogger(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	screen := core.NewScreen(cfg.Display.Width, cfg.Display.Height)
	g := New(cfg.Runtime(1), cfg, screen, nil)

	g.Tick() // Should not panic
	g.Input(core.CharKey('a'))
}

func TestInitializeRandomizesDelays(t *testing.T) {
	g, _, _ := newTestGame(t, nil)

	for i, e := range g.Enemies() {
		if e.ID != i {
			t.Errorf("enemy slot %d has ID %d", i, e.ID)
		}
		if e.MaxDelay < 3 || e.MaxDelay > 9 {
			t.Errorf("enemy %d MaxDelay = %d, expected in [3, 9]", i, e.MaxDelay)
		}
		if e.Alive {
			t.Errorf("enemy %d should start dead", i)
		}
	}
	for i, p := range g.Projectiles() {
		if p.ID != i {
			t.Errorf("projectile slot %d has ID %d", i, p.ID)
		}
	}
}

func TestFirstCallInitializes(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	screen := core.NewScreen(cfg.Display.Width, cfg.Display.Height)

	g := New(cfg.Runtime(1), cfg, screen, nil)
	g.Input(core.RawKey(core.KeyUp))
	if !g.initialized {
		t.Error("Input should initialize the game")
	}

	g = New(cfg.Runtime(1), cfg, screen, nil)
	g.Tick()
	if !g.initialized {
		t.Error("Tick should initialize the game")
	}
}

func TestEnemyDescendsAfterMaxDelay(t *testing.T) {
	g, _, _ := newTestGame(t, slowEnemies)
	e := placeEnemy(g, 0, 40, 0, 5)

	for i := 1; i <= 4; i++ {
		g.Tick()
		if e.Y != 0 {
			t.Fatalf("after %d ticks enemy at row %d, expected 0", i, e.Y)
		}
	}
	g.Tick()
	if e.Y != 1 {
		t.Errorf("after 5 ticks enemy at row %d, expected 1", e.Y)
	}
	if e.MoveDelay != 5 {
		t.Errorf("MoveDelay = %d, expected re-armed to 5", e.MoveDelay)
	}

	// 23 more rows to the bottom, then one more delay to breach.
	ticks := 0
	for e.Alive && ticks < 1000 {
		g.Tick()
		ticks++
	}
	if ticks != 24*5 {
		t.Errorf("enemy breached after %d more ticks, expected %d", ticks, 24*5)
	}
	if g.Health() != 9 {
		t.Errorf("Health() = %d, expected 9", g.Health())
	}
}

func TestProjectileHitsEnemyOnFourthTick(t *testing.T) {
	g, _, _ := newTestGame(t, slowEnemies)
	e := placeEnemy(g, 0, 41, 18, 100)

	g.Input(core.RawKey(core.KeySpace))
	before := g.ActiveEnemies()

	for i := 1; i <= 3; i++ {
		g.Tick()
		if !e.Alive {
			t.Fatalf("enemy destroyed early, on tick %d", i)
		}
	}
	g.Tick()

	if e.Alive {
		t.Fatal("enemy should be destroyed on the 4th tick")
	}
	// One spawn per tick, one kill.
	if got, want := g.ActiveEnemies(), before+4-1; got != want {
		t.Errorf("ActiveEnemies() = %d, expected %d", got, want)
	}
	if g.store.ActiveProjectiles() != 0 {
		t.Error("projectile should be consumed by the hit")
	}
}

func TestSpawnCap(t *testing.T) {
	g, _, _ := newTestGame(t, slowEnemies)

	for i := 1; i <= EnemySlots; i++ {
		g.Tick()
		if g.ActiveEnemies() != i {
			t.Fatalf("after %d ticks ActiveEnemies() = %d", i, g.ActiveEnemies())
		}
	}
	for i := 0; i < 5; i++ {
		g.Tick()
		if g.ActiveEnemies() != EnemySlots {
			t.Fatalf("ActiveEnemies() = %d, must not exceed %d", g.ActiveEnemies(), EnemySlots)
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	g, _, _ := newTestGame(t, slowEnemies)

	for i := 0; i < EnemySlots; i++ {
		g.Tick()
	}
	for _, e := range g.Enemies() {
		if !e.Alive {
			t.Errorf("enemy %d should be alive", e.ID)
		}
		if e.X < 0 || e.X >= 80 {
			t.Errorf("enemy %d column %d out of range", e.ID, e.X)
		}
		// A spawned enemy steps once on its first tick but has not moved yet.
		if e.Y != 0 {
			t.Errorf("enemy %d at row %d, expected 0", e.ID, e.Y)
		}
	}
}

func TestTickDelay(t *testing.T) {
	g, _, _ := newTestGame(t, func(c *config.ShooterConfig) {
		c.Display.TickDelay = 3
	})

	g.Tick()
	g.Tick()
	if g.ActiveEnemies() != 0 {
		t.Fatalf("no step should run before tick 3, got %d enemies", g.ActiveEnemies())
	}
	g.Tick()
	if g.ActiveEnemies() != 1 {
		t.Errorf("step on tick 3 should spawn, got %d enemies", g.ActiveEnemies())
	}
	if g.State().Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", g.State().Ticks)
	}
}

func TestBreachCostsHealth(t *testing.T) {
	g, _, _ := newTestGame(t, slowEnemies)
	e := placeEnemy(g, 0, 10, 24, 1)

	g.Tick()

	if e.Alive {
		t.Error("enemy on the last row should be removed when its delay expires")
	}
	if g.Health() != 9 {
		t.Errorf("Health() = %d, expected 9", g.Health())
	}
	// Spawned one, lost one.
	if g.ActiveEnemies() != 1 {
		t.Errorf("ActiveEnemies() = %d, expected 1", g.ActiveEnemies())
	}
}

func TestEnemyReachesLastRowBeforeBreach(t *testing.T) {
	g, _, _ := newTestGame(t, slowEnemies)
	e := placeEnemy(g, 0, 10, 23, 1)

	g.Tick()
	if !e.Alive || e.Y != 24 {
		t.Fatalf("enemy should move to row 24, got alive=%v row=%d", e.Alive, e.Y)
	}
	if g.Health() != 10 {
		t.Errorf("no damage before the breach, health = %d", g.Health())
	}

	g.Tick()
	if e.Alive || g.Health() != 9 {
		t.Errorf("breach on next expiry: alive=%v health=%d", e.Alive, g.Health())
	}
}

func TestDeathAndAbsorption(t *testing.T) {
	g, screen, buf := newTestGame(t, func(c *config.ShooterConfig) {
		slowEnemies(c)
		c.Player.Health = 1
	})
	placeEnemy(g, 0, 10, 24, 1)

	g.Tick()
	if !g.Dead() || g.Health() != 0 {
		t.Fatalf("expected dead with 0 health, got dead=%v health=%d", g.Dead(), g.Health())
	}
	if !bytes.Contains(buf.Bytes(), []byte("player died")) {
		t.Error("death should be logged")
	}

	enemies := g.ActiveEnemies()
	player := g.Player()
	for i := 0; i < 20; i++ {
		g.Tick()
		g.Input(core.CharKey('a'))
		g.Input(core.RawKey(core.KeySpace))
	}

	if g.Health() != 0 || !g.Dead() {
		t.Error("health must stay at zero")
	}
	if g.ActiveEnemies() != enemies {
		t.Errorf("no spawns after death: %d -> %d", enemies, g.ActiveEnemies())
	}
	if g.Player().X != player.X {
		t.Error("input must be ignored after death")
	}
	if g.State().Fired != 0 || g.store.ActiveProjectiles() != 0 {
		t.Errorf("fire must be ignored after death, fired = %d", g.State().Fired)
	}

	want := strings.Repeat(" ", 35) + DeathMessage + strings.Repeat(" ", 36)
	if got := screen.Row(12); got != want {
		t.Errorf("Row(12) = %q, expected %q", got, want)
	}
	if got := screen.GetCell(35, 12); got.Color != core.ColorRed {
		t.Errorf("death message color = %v, expected red", got.Color)
	}
	for y := 0; y < 25; y++ {
		if y != 12 && screen.Row(y) != strings.Repeat(" ", 80) {
			t.Errorf("row %d should be blank on the death screen: %q", y, screen.Row(y))
		}
	}
}

func TestDamageSaturates(t *testing.T) {
	g, _, _ := newTestGame(t, func(c *config.ShooterConfig) {
		c.Player.Health = 2
	})

	for i := 0; i < 5; i++ {
		g.damage()
	}
	if g.Health() != 0 {
		t.Errorf("Health() = %d, expected 0", g.Health())
	}
}

func TestHealthNeverIncreases(t *testing.T) {
	g, _, _ := newTestGame(t, func(c *config.ShooterConfig) {
		c.Enemies.MinDelay = 1
		c.Enemies.MaxDelay = 2
	})

	prev := g.Health()
	for i := 0; i < 500; i++ {
		if i%7 == 0 {
			g.Input(core.RawKey(core.KeySpace))
		}
		g.Tick()
		if g.Health() > prev {
			t.Fatalf("tick %d: health rose from %d to %d", i, prev, g.Health())
		}
		if g.Health() < 0 {
			t.Fatalf("tick %d: negative health %d", i, g.Health())
		}
		prev = g.Health()
	}
	if !g.Dead() {
		t.Error("fast enemies should eventually kill the player")
	}
}

func TestActiveCountMatchesSlots(t *testing.T) {
	g, _, _ := newTestGame(t, func(c *config.ShooterConfig) {
		c.Enemies.MinDelay = 1
		c.Enemies.MaxDelay = 3
		c.Player.Health = 1000
	})

	keys := []core.KeyEvent{
		core.RawKey(core.KeySpace), core.CharKey('a'), core.CharKey('w'),
		core.CharKey('d'), core.RawKey(core.KeyLeft), core.CharKey('d'),
	}
	for i := 0; i < 300; i++ {
		g.Input(keys[i%len(keys)])
		g.Tick()
		if g.ActiveEnemies() != g.store.AliveEnemies() {
			t.Fatalf("tick %d: ActiveEnemies() = %d, alive slots = %d",
				i, g.ActiveEnemies(), g.store.AliveEnemies())
		}
		for j, e := range g.Enemies() {
			if e.ID != j {
				t.Fatalf("tick %d: enemy slot %d changed ID to %d", i, j, e.ID)
			}
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() (string, core.GameState) {
		g, screen, _ := newTestGame(t, nil)
		for i := 0; i < 200; i++ {
			if i%5 == 0 {
				g.Input(core.RawKey(core.KeySpace))
			}
			if i%3 == 0 {
				g.Input(core.CharKey('d'))
			}
			g.Tick()
		}
		return screen.String(), g.State()
	}

	screenA, stateA := run()
	screenB, stateB := run()
	if screenA != screenB {
		t.Error("same seed and input should render the same board")
	}
	if stateA != stateB {
		t.Errorf("states differ: %+v vs %+v", stateA, stateB)
	}
}
