// Package registry provides a global registry for game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguins/internal/config"
	"github.com/vovakirdan/penguins/internal/core"
)

// Options carries everything a frontend needs to run the game.
type Options struct {
	Config  config.PenguinsConfig
	Runtime core.RuntimeConfig

	// ConfigPath is the file the config was loaded from, empty for the embedded default.
	ConfigPath string
	// Watch reloads tuning from ConfigPath while the game runs.
	Watch bool

	Logger *log.Logger
	Sounds Sounds // nil plays nothing
}

// Sounds plays named audio cues.
type Sounds interface {
	Play(name string) error
	SetMuted(muted bool)
	Muted() bool
}

// Frontend presents the game on one kind of display and owns its loop.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g., "window").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run blocks until the player quits or the display fails.
	Run(opts Options) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
