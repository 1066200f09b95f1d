package shooter

// EnemySlots is the fixed number of enemy slots, and so the cap on live enemies.
const EnemySlots = 10

// Sprite is the glyph sequence of an entity, drawn centered on its column.
// Only odd lengths have a middle glyph; even-length sprites are not drawn.
type Sprite []rune

// Valid reports whether the sprite has a defined middle glyph.
func (s Sprite) Valid() bool {
	return len(s)%2 == 1
}

// HalfWidth is the number of glyphs on each side of the middle one.
// It doubles as the horizontal hit radius.
func (s Sprite) HalfWidth() int {
	return len(s) / 2
}

// Player is the ship at the bottom of the board. It is never destroyed.
type Player struct {
	X, Y   int
	Sprite Sprite
}

// Enemy occupies one of the fixed enemy slots.
type Enemy struct {
	ID        int  // Slot index, fixed at initialization
	Alive     bool // Whether the slot currently holds a live enemy
	X, Y      int
	MoveDelay int // Steps left before the next downward move
	MaxDelay  int // Value MoveDelay is re-armed to after each move
	Sprite    Sprite
}

// Projectile occupies one of the projectile slots.
type Projectile struct {
	ID     int
	Active bool
	X, Y   int
	Glyph  rune
}
