// shooter is a vertical shooter played in the terminal.
//
// Usage:
//
//	shooter play             - Play a game
//	shooter sim              - Run a headless, scripted game and print the board
//	shooter drivers          - List terminal drivers
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"

	// Import drivers to register them
	_ "github.com/vovakirdan/tui-shooter/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagWidth      int
	flagHeight     int
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - a vertical shooter in your terminal",
	Long: `Shooter is a small arcade game played in the terminal.

Enemies drop from the top of the screen. Move along the bottom row and
shoot them down before they reach it; every enemy that gets through
costs one point of health.

Available commands:
  play     - Play a game
  sim      - Run a headless game with scripted keys
  drivers  - Show terminal drivers
  config   - Print the effective configuration

Examples:
  shooter play
  shooter play --driver tcell --difficulty hard
  shooter sim --seed 7 --ticks 300 --script "1=d,2=space"
  shooter config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time for play)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from file, preset and flags.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyShooterPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagWidth > 0 {
		cfg.Display.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Display.Height = flagHeight
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger opens the log destination. The returned func closes it.
func newLogger() (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeLog := func() error { return nil }

	if flagLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = f.Close
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closeLog, nil
}
