package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMap defines the key bindings shown in the help footer.
// Game keys are only listed here; the game itself decides what they do.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	AltFire    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.AltFire, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.AltFire},
		{k.Screenshot, k.Quit},
	}
}

// NewKeyMap builds the bindings for the configured movement and fire characters.
func NewKeyMap(keys config.ShooterKeys) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(keys.Left, "left"),
			key.WithHelp(keys.Left+"/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(keys.Right, "right"),
			key.WithHelp(keys.Right+"/→", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		AltFire: key.NewBinding(
			key.WithKeys(keys.Fire),
			key.WithHelp(keys.Fire, "fire"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// TranslateKey converts a Bubble Tea key message into a game key event.
// ok is false for keys the game has no representation for.
func TranslateKey(msg tea.KeyMsg) (ev core.KeyEvent, ok bool) {
	switch msg.Type {
	case tea.KeySpace:
		return core.RawKey(core.KeySpace), true
	case tea.KeyLeft:
		return core.RawKey(core.KeyLeft), true
	case tea.KeyRight:
		return core.RawKey(core.KeyRight), true
	case tea.KeyUp:
		return core.RawKey(core.KeyUp), true
	case tea.KeyDown:
		return core.RawKey(core.KeyDown), true
	case tea.KeyEnter:
		return core.RawKey(core.KeyEnter), true
	case tea.KeyEsc:
		return core.RawKey(core.KeyEscape), true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.KeyEvent{}, false
		}
		if msg.Runes[0] == ' ' {
			return core.RawKey(core.KeySpace), true
		}
		return core.CharKey(msg.Runes[0]), true
	}
	return core.KeyEvent{}, false
}
