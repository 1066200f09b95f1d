package tcellterm

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Driver runs the shooter on a tcell screen.
type Driver struct{}

// ID returns the driver identifier.
func (Driver) ID() string {
	return "tcell"
}

// Title returns the display name.
func (Driver) Title() string {
	return "tcell (direct cell output)"
}

// Run initializes the terminal, plays one game and restores the terminal.
func (Driver) Run(ctx context.Context, s registry.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellterm: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellterm: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	return run(ctx, screen, s)
}

// run is the driver loop. Ticks and key events are handled in a single
// select so the game's entry points are never called concurrently.
func run(ctx context.Context, screen tcell.Screen, s registry.Session) error {
	logger := s.Log()
	rt := s.Runtime

	surface := NewSurface(screen, rt.ScreenW, rt.ScreenH)
	game := shooter.New(rt, s.Config, surface, logger)

	screen.Clear()
	drawFooter(screen, rt.ScreenH, s.Config.Keys)
	screen.Show()

	rate := rt.TickRate
	if rate <= 0 {
		rate = 1
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					logState(logger, game)
					return nil
				}
				if key, ok := translateKey(ev); ok {
					game.Input(key)
					screen.Show()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			game.Tick()
			screen.Show()
		}
	}
}

// drawFooter writes the key help on the row below the board.
func drawFooter(screen tcell.Screen, row int, keys config.ShooterKeys) {
	text := fmt.Sprintf("%s/%s move  space/%s fire  esc quit", keys.Left, keys.Right, keys.Fire)
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x := 0
	for _, r := range text {
		screen.SetContent(x, row, r, nil, st)
		x++
	}
}

func logState(logger *log.Logger, game *shooter.Game) {
	state := game.State()
	logger.Info("game closed", "health", state.Health, "ticks", state.Ticks, "dead", state.Dead)
}

func init() {
	registry.Register("tcell", func() registry.Driver {
		return Driver{}
	})
}
