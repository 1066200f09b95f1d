package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Driver runs the shooter inside a Bubble Tea program.
type Driver struct{}

// ID returns the driver identifier.
func (Driver) ID() string {
	return "tea"
}

// Title returns the display name.
func (Driver) Title() string {
	return "Bubble Tea (lipgloss rendering)"
}

// Run plays one game on the alternate screen until the user quits.
func (Driver) Run(ctx context.Context, s registry.Session) error {
	logger := s.Log()
	screen := core.NewScreen(s.Runtime.ScreenW, s.Runtime.ScreenH)
	game := shooter.New(s.Runtime, s.Config, screen, logger)
	model := NewModel(game, screen, s.Runtime, NewKeyMap(s.Config.Keys), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok {
		state := m.game.State()
		logger.Info("game closed", "health", state.Health, "ticks", state.Ticks, "dead", state.Dead)
	}
	return nil
}

func init() {
	registry.Register("tea", func() registry.Driver {
		return Driver{}
	})
}
