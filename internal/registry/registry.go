// Package registry provides a global registry for terminal drivers.
// Drivers register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Session carries everything a driver needs to build and run one game.
type Session struct {
	Runtime core.RuntimeConfig
	Config  config.ShooterConfig
	Logger  *log.Logger
}

// Log returns the session logger, or a discarding logger when none was set.
func (s Session) Log() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Driver owns a terminal for the duration of a game. It provides the
// display surface, decodes keys, and calls the game's Tick and Input
// entry points one at a time.
type Driver interface {
	// ID returns a unique identifier for this driver (e.g., "tea", "tcell").
	// Used for the --driver flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays a game until the user quits or ctx is cancelled.
	Run(ctx context.Context, s Session) error
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a driver.
type Factory func() Driver

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver's init() function.
// Panics if a driver with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered drivers, sorted by ID.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DriverInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new driver by its ID.
// Returns an error if the driver ID is not registered.
func Create(id string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", id)
	}

	return f(), nil
}

// Exists checks if a driver with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
