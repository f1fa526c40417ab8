// Package registry is the catalogue of playable games.
// Games register a factory from their package init(), and platforms create
// fresh instances by id without importing any game directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is implemented by every game. A Game value is the whole game state:
// two instances never share anything, so tests and concurrent SSH sessions
// can each own one.
type Game interface {
	// ID returns the stable identifier used by the CLI and score storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset puts the game into its initial state. Calling it twice in a row
	// is the same as calling it once.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using a frozen input
	// snapshot.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst, which the caller has cleared.
	// Render never changes game state.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// Controls is optionally implemented by games to describe their keys in menus.
type Controls interface {
	Controls() string
}

// Configurable is implemented by games with YAML tunables. path may be
// empty, in which case the usual search path applies. It is called before
// the first Reset.
type Configurable interface {
	Configure(path string, preset config.DifficultyPreset) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, un-reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
