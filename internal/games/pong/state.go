// Package pong implements the Pong match: one human paddle on the left,
// one CPU paddle on the right, first to the win score.
//
// The package is pure simulation. State is an explicit value mutated by
// Engine.Update once per tick and drawn by Render; hosts supply input,
// timing and the drawing surface.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Side identifies one end of the table.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideCPU
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideCPU:
		return "cpu"
	default:
		return "none"
	}
}

// Status messages shown while a match waits for the start key.
const (
	MessageStart = "Press space to start"
	MessageLost  = "You lost. Press space to play again"
	MessageWon   = "You win! Press space to play again"
)

// State holds all mutable simulation state of one match.
type State struct {
	Player   core.Rect   // Left paddle
	CPU      core.Rect   // Right paddle
	Ball     core.Circle // Center and radius
	Velocity core.Vec2   // Pixels per tick

	ScorePlayer int
	ScoreCPU    int

	// ServeReceiver is the side the next serve is launched towards.
	// SideNone while a rally is in progress.
	ServeReceiver Side

	Paused          bool
	WaitingForStart bool
	Message         string

	// CooldownMs blocks paddle collisions until it runs out.
	CooldownMs int
}

// Input is the per-tick input of the human player.
type Input struct {
	Up    bool // Held
	Down  bool // Held
	Pause bool // Pressed this tick
	Start bool // Pressed this tick
}

// InputFromFrame converts semantic host actions to match input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Pause: f.Has(core.ActionPause),
		Start: f.Has(core.ActionStart),
	}
}

// Winner returns the side that reached the win score, or SideNone.
func (s State) Winner(winScore int) Side {
	switch {
	case s.ScorePlayer >= winScore:
		return SidePlayer
	case s.ScoreCPU >= winScore:
		return SideCPU
	default:
		return SideNone
	}
}
