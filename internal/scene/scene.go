// Package scene provides the screens of the game and the director that
// switches between them. Scenes register themselves in init() functions,
// so hosts only ever talk to a Director.
package scene

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// ID names a scene. The empty ID means "stay in the current scene".
type ID string

// Built-in scenes.
const (
	IDNone     ID = ""
	IDMenu     ID = "menu"
	IDGameplay ID = "gameplay"
)

// Scene is one screen of the game. Scenes contain no host code; the
// director feeds them time and input and hands them a canvas to draw on.
type Scene interface {
	// ID returns the identifier the scene was registered under.
	ID() ID

	// Enter is called when the scene becomes current.
	Enter()

	// Update advances the scene by elapsedMs and returns the scene to
	// switch to, or IDNone to stay.
	Update(elapsedMs int, in core.InputFrame) ID

	// Render draws the scene. The canvas is cleared before this call.
	Render(c core.Canvas)

	// Exit is called when the scene stops being current.
	Exit()
}

// Env is shared by all scenes of one director.
type Env struct {
	Config config.Config
	Seed   int64
	Logger *log.Logger
}

// Factory creates a scene for the given environment.
type Factory func(env Env) Scene

var (
	factories = make(map[ID]Factory)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id ID, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scene: %q already registered", id))
	}
	factories[id] = f
}

// List returns the registered scene IDs, sorted.
func List() []ID {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ID, 0, len(factories))
	for id := range factories {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// Create instantiates a scene by its ID.
func Create(id ID, env Env) (Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", id)
	}
	return f(env), nil
}
