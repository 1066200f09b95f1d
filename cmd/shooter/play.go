package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing in the terminal.

Controls (default bindings):
  a / Left    - Move left (wraps around)
  d / Right   - Move right (wraps around)
  Space / w   - Fire
  Esc/Ctrl+C  - Quit

The board has a fixed size (80x25 by default); the terminal must be at
least one row taller than the board for the key help line.

Difficulty options:
  easy   - 15 health, slow enemies
  normal - 10 health
  hard   - 5 health, fast enemies

Examples:
  shooter play
  shooter play --driver tcell
  shooter play --difficulty hard --seed 42
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "tea", "Terminal driver (see 'shooter drivers')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagDriver) {
		return fmt.Errorf("unknown driver %q, run 'shooter drivers' to see available drivers", flagDriver)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The board never adapts to the terminal, so refuse to start in one that is too small.
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			if w < cfg.Display.Width || h < cfg.Display.Height+1 {
				return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, cfg.Display.Width, cfg.Display.Height+1)
			}
		}
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	driver, err := registry.Create(flagDriver)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting game", "driver", driver.ID(), "seed", seed, "width", cfg.Display.Width, "height", cfg.Display.Height)

	return driver.Run(ctx, registry.Session{
		Runtime: cfg.Runtime(seed),
		Config:  cfg,
		Logger:  logger,
	})
}
