// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Display    ShooterDisplay    `yaml:"display"`
	Player     ShooterPlayer     `yaml:"player"`
	Enemies    ShooterEnemies    `yaml:"enemies"`
	Projectile ShooterProjectile `yaml:"projectile"`
	Keys       ShooterKeys       `yaml:"keys"`
}

// ShooterDisplay defines the fixed board geometry and pacing.
type ShooterDisplay struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TickRate  int `yaml:"tick_rate"`  // Ticks per second
	TickDelay int `yaml:"tick_delay"` // Ticks per simulation step
}

// ShooterPlayer defines the player sprite and starting health.
type ShooterPlayer struct {
	Sprite string `yaml:"sprite"`
	Health int    `yaml:"health"`
	Color  string `yaml:"color"`
}

// ShooterEnemies defines enemy appearance and descent pacing.
type ShooterEnemies struct {
	Sprite   string `yaml:"sprite"`
	MinDelay int    `yaml:"min_delay"` // Fastest enemy: ticks between steps
	MaxDelay int    `yaml:"max_delay"` // Slowest enemy: ticks between steps
	Color    string `yaml:"color"`
}

// ShooterProjectile defines the projectile glyph.
type ShooterProjectile struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// ShooterKeys defines the character bindings. Space always fires.
type ShooterKeys struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Fire  string `yaml:"fire"`
}

// Validate reports the first setting that would leave the game unplayable.
func (c ShooterConfig) Validate() error {
	if c.Display.Width < 1 {
		return fmt.Errorf("config: display.width must be positive, got %d", c.Display.Width)
	}
	if c.Display.Height < 4 {
		return fmt.Errorf("config: display.height must be at least 4, got %d", c.Display.Height)
	}
	if c.Display.TickRate < 1 {
		return fmt.Errorf("config: display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Display.TickDelay < 1 {
		return fmt.Errorf("config: display.tick_delay must be positive, got %d", c.Display.TickDelay)
	}
	if c.Player.Health < 1 {
		return fmt.Errorf("config: player.health must be positive, got %d", c.Player.Health)
	}
	if c.Player.Sprite == "" || c.Enemies.Sprite == "" {
		return fmt.Errorf("config: player.sprite and enemies.sprite must not be empty")
	}
	if c.Enemies.MinDelay < 1 || c.Enemies.MaxDelay < c.Enemies.MinDelay {
		return fmt.Errorf("config: enemy delay range [%d, %d] is invalid", c.Enemies.MinDelay, c.Enemies.MaxDelay)
	}
	if utf8.RuneCountInString(c.Projectile.Glyph) != 1 {
		return fmt.Errorf("config: projectile.glyph must be a single character, got %q", c.Projectile.Glyph)
	}

	bindings := []struct{ name, key string }{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"fire", c.Keys.Fire},
	}
	seen := make(map[string]string, len(bindings))
	for _, b := range bindings {
		if utf8.RuneCountInString(b.key) != 1 {
			return fmt.Errorf("config: keys.%s must be a single character, got %q", b.name, b.key)
		}
		if other, dup := seen[b.key]; dup {
			return fmt.Errorf("config: keys.%s and keys.%s are both bound to %q", other, b.name, b.key)
		}
		seen[b.key] = b.name
	}
	return nil
}

// Runtime derives the runtime config for a game built from this config.
func (c ShooterConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Display.Width,
		ScreenH:  c.Display.Height,
		TickRate: c.Display.TickRate,
		Seed:     seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
