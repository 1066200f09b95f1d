package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // a, Left arrow - move one column left
	ActionMoveRight        // d, Right arrow - move one column right
	ActionFire             // Space - fire, counted
	ActionAltFire          // w - fire, not counted
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionAltFire:
		return "AltFire"
	default:
		return "Unknown"
	}
}

// KeyCode identifies a non-printable (raw) key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return "unknown"
	}
}

// KeyEvent is one decoded keystroke: either a raw key code or a printable rune.
type KeyEvent struct {
	Raw  bool    // true for control keys, false for characters
	Code KeyCode // valid when Raw
	Char rune    // valid when !Raw
}

// RawKey builds a control-key event.
func RawKey(code KeyCode) KeyEvent {
	return KeyEvent{Raw: true, Code: code}
}

// CharKey builds a printable-character event.
func CharKey(r rune) KeyEvent {
	return KeyEvent{Char: r}
}

// String returns the key name, e.g. "space" or "'a'".
func (e KeyEvent) String() string {
	if e.Raw {
		return e.Code.String()
	}
	return fmt.Sprintf("%q", e.Char)
}

// ParseKey converts a key name to an event. Names are a single printable
// character or one of the raw key names returned by KeyCode.String.
func ParseKey(name string) (KeyEvent, error) {
	for code := KeySpace; code <= KeyEscape; code++ {
		if name == code.String() {
			return RawKey(code), nil
		}
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return KeyEvent{}, fmt.Errorf("unknown key %q", name)
	}
	if runes[0] == ' ' {
		return RawKey(KeySpace), nil
	}
	return CharKey(runes[0]), nil
}
