package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// translateKey converts a tcell key event into a game key event.
// ok is false for keys the game has no representation for.
func translateKey(ev *tcell.EventKey) (core.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return core.RawKey(core.KeySpace), true
		}
		return core.CharKey(ev.Rune()), true
	case tcell.KeyLeft:
		return core.RawKey(core.KeyLeft), true
	case tcell.KeyRight:
		return core.RawKey(core.KeyRight), true
	case tcell.KeyUp:
		return core.RawKey(core.KeyUp), true
	case tcell.KeyDown:
		return core.RawKey(core.KeyDown), true
	case tcell.KeyEnter:
		return core.RawKey(core.KeyEnter), true
	}
	return core.KeyEvent{}, false
}

// isQuit reports whether the event ends the session.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
