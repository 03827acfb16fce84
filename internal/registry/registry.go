// Package registry holds the catalog of playable games. Games register a
// factory in their init() function so the platform and CLI can discover and
// instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dkotenko/clickrush/internal/core"
)

// Game is the interface every game must implement. Game logic is pure: no
// Bubble Tea, no terminal access. The platform drives ticks, maps input and
// displays the screen buffer.
type Game interface {
	// ID returns the unique identifier used for CLI commands and score
	// storage (e.g. "rush").
	ID() string

	// Title returns the human-readable display name.
	Title() string

	// Reset initializes or restarts the game with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with this tick's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer. The buffer is
	// cleared by the game itself.
	Render(dst *core.Screen)

	// State returns the platform-visible status.
	State() core.GameState
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. Called from a game's init() function.
// Panics on duplicate IDs; that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		result = append(result, Info{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
