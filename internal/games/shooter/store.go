package shooter

// EntityStore holds every enemy and projectile the game can ever have.
// Slots are never created or destroyed after construction; an entity
// "exists" while its Alive/Active flag is set.
type EntityStore struct {
	enemies     [EnemySlots]Enemy
	projectiles []Projectile
}

// NewEntityStore creates a store with all slots inactive.
func NewEntityStore(projectileSlots int, enemySprite Sprite, glyph rune) *EntityStore {
	s := &EntityStore{
		projectiles: make([]Projectile, projectileSlots),
	}
	for i := range s.enemies {
		s.enemies[i].Sprite = enemySprite
	}
	for i := range s.projectiles {
		s.projectiles[i].Glyph = glyph
	}
	return s
}

// assignIDs stamps every slot with its index.
func (s *EntityStore) assignIDs() {
	for i := range s.enemies {
		s.enemies[i].ID = i
	}
	for i := range s.projectiles {
		s.projectiles[i].ID = i
	}
}

// AllocateEnemy returns the id of the first dead enemy slot.
// ok is false when every slot is alive.
func (s *EntityStore) AllocateEnemy() (id int, ok bool) {
	for i := range s.enemies {
		if !s.enemies[i].Alive {
			return i, true
		}
	}
	return -1, false
}

// AllocateProjectile returns the id of the first inactive projectile slot.
// ok is false when every projectile is in flight.
func (s *EntityStore) AllocateProjectile() (id int, ok bool) {
	for i := range s.projectiles {
		if !s.projectiles[i].Active {
			return i, true
		}
	}
	return -1, false
}

// Enemy returns the slot with the given id for in-place mutation.
func (s *EntityStore) Enemy(id int) *Enemy {
	return &s.enemies[id]
}

// Projectile returns the slot with the given id for in-place mutation.
func (s *EntityStore) Projectile(id int) *Projectile {
	return &s.projectiles[id]
}

// AliveEnemies counts enemy slots with the alive flag set.
func (s *EntityStore) AliveEnemies() int {
	n := 0
	for i := range s.enemies {
		if s.enemies[i].Alive {
			n++
		}
	}
	return n
}

// ActiveProjectiles counts projectile slots in flight.
func (s *EntityStore) ActiveProjectiles() int {
	n := 0
	for i := range s.projectiles {
		if s.projectiles[i].Active {
			n++
		}
	}
	return n
}
