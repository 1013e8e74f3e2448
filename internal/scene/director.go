package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

// Director owns the current scene and performs transitions between scenes.
// It is not safe for concurrent use; each host loop owns one.
type Director struct {
	env     Env
	current Scene
}

// NewDirector creates a director and enters the start scene.
func NewDirector(env Env, start ID) (*Director, error) {
	if env.Logger == nil {
		env.Logger = logging.Discard()
	}

	s, err := Create(start, env)
	if err != nil {
		return nil, fmt.Errorf("director: %w", err)
	}

	d := &Director{env: env, current: s}
	env.Logger.Debug("enter scene", "scene", s.ID())
	s.Enter()
	return d, nil
}

// Current returns the active scene.
func (d *Director) Current() Scene {
	return d.current
}

// Update advances the current scene and switches scenes when it asks to.
// A request for an unknown scene is logged and ignored.
func (d *Director) Update(elapsedMs int, in core.InputFrame) {
	next := d.current.Update(elapsedMs, in)
	if next == IDNone || next == d.current.ID() {
		return
	}

	s, err := Create(next, d.env)
	if err != nil {
		d.env.Logger.Error("scene transition failed", "from", d.current.ID(), "err", err)
		return
	}

	d.env.Logger.Debug("switch scene", "from", d.current.ID(), "to", next)
	d.current.Exit()
	d.current = s
	d.current.Enter()
}

// Render clears the canvas and draws the current scene.
func (d *Director) Render(c core.Canvas) {
	c.Clear()
	d.current.Render(c)
}

// Close exits the current scene.
func (d *Director) Close() {
	d.current.Exit()
}
