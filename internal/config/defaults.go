package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Display: ShooterDisplay{
			Width:     80,
			Height:    25,
			TickRate:  10,
			TickDelay: 1,
		},
		Player: ShooterPlayer{
			Sprite: `/|\`,
			Health: 10,
			Color:  "blue",
		},
		Enemies: ShooterEnemies{
			Sprite:   "<#.#>",
			MinDelay: 3,
			MaxDelay: 9,
			Color:    "red",
		},
		Projectile: ShooterProjectile{
			Glyph: "*",
			Color: "green",
		},
		Keys: ShooterKeys{
			Left:  "a",
			Right: "d",
			Fire:  "w",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
