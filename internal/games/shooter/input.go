package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// keyBindings maps printable characters to actions.
type keyBindings struct {
	left  rune
	right rune
	fire  rune
}

func newKeyBindings(k config.ShooterKeys) keyBindings {
	return keyBindings{
		left:  firstRune(k.Left, 'a'),
		right: firstRune(k.Right, 'd'),
		fire:  firstRune(k.Fire, 'w'),
	}
}

// MapKey translates a key event to the action it triggers.
// Space is the counted fire key; arrows move like the movement characters.
func (g *Game) MapKey(ev core.KeyEvent) core.Action {
	if ev.Raw {
		switch ev.Code {
		case core.KeySpace:
			return core.ActionFire
		case core.KeyLeft:
			return core.ActionMoveLeft
		case core.KeyRight:
			return core.ActionMoveRight
		}
		return core.ActionNone
	}

	switch ev.Char {
	case g.keys.left:
		return core.ActionMoveLeft
	case g.keys.right:
		return core.ActionMoveRight
	case g.keys.fire:
		return core.ActionAltFire
	}
	return core.ActionNone
}

// Input applies one key event. Movement redraws immediately so the ship
// responds between ticks. Input is ignored once the game is over.
func (g *Game) Input(ev core.KeyEvent) {
	if !g.initialized {
		g.initialize()
	}
	if g.Dead() {
		return
	}

	switch g.MapKey(ev) {
	case core.ActionMoveLeft:
		g.player.X = core.WrapDec(g.player.X, g.width)
		g.redraw()
	case core.ActionMoveRight:
		g.player.X = core.WrapInc(g.player.X, g.width)
		g.redraw()
	case core.ActionFire:
		g.fired++
		g.fire()
	case core.ActionAltFire:
		g.fire()
	}
}

// fire launches a projectile from the row above the player.
// With every slot in flight the shot is dropped.
func (g *Game) fire() {
	id, ok := g.store.AllocateProjectile()
	if !ok {
		g.logger.Debug("fire dropped: no free projectile slot")
		return
	}

	p := g.store.Projectile(id)
	p.X = g.player.X
	p.Y = g.player.Y - 1
	p.Active = true
}
