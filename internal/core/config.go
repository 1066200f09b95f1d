package core

// RuntimeConfig contains configuration passed to the game at construction.
// The board geometry is fixed for the lifetime of a game; it is never
// rediscovered from the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Board width in characters
	ScreenH  int   // Board height in characters
	TickRate int   // Ticks per second delivered by the driver
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState summarizes the engine for drivers and the CLI.
type GameState struct {
	Health        int  // Remaining health
	ActiveEnemies int  // Enemies currently alive
	Fired         int  // Projectiles fired with the fire key
	Ticks         int  // Tick calls received
	Dead          bool // Whether the game has ended
}
