// Package config provides YAML/TOML configuration loading, validation and
// difficulty presets for the Pong game.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable constant of a match and its hosts.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Paddles  PaddleConfig   `yaml:"paddles" toml:"paddles"`
	CPU      CPUConfig      `yaml:"cpu" toml:"cpu"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Rules    RulesConfig    `yaml:"rules" toml:"rules"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
}

// WindowConfig defines the logical playfield and the window host settings.
type WindowConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	FPS        int    `yaml:"fps" toml:"fps"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	Title      string `yaml:"title" toml:"title"`
}

// PaddleConfig defines paddle geometry and the player's paddle speed.
type PaddleConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Inset     float64 `yaml:"inset" toml:"inset"`           // Gap between paddle and window edge
	MoveSpeed float64 `yaml:"move_speed" toml:"move_speed"` // Pixels per tick
}

// CPUConfig defines the computer paddle's tracking speed.
type CPUConfig struct {
	Speed float64 `yaml:"speed" toml:"speed"` // Pixels per tick
}

// BallConfig defines ball size and the bounce model.
type BallConfig struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	Speed          float64 `yaml:"speed" toml:"speed"`                       // Max speed per axis, pixels per tick
	MaxBounceAngle float64 `yaml:"max_bounce_angle" toml:"max_bounce_angle"` // Degrees
	MinHorizontal  float64 `yaml:"min_horizontal" toml:"min_horizontal"`     // Floor of the horizontal fraction after a bounce
	ServeVY        float64 `yaml:"serve_vy" toml:"serve_vy"`                 // Vertical speed of a serve
}

// RulesConfig defines scoring and collision timing.
type RulesConfig struct {
	WinScore            int `yaml:"win_score" toml:"win_score"`
	CollisionCooldownMs int `yaml:"collision_cooldown_ms" toml:"collision_cooldown_ms"`
}

// TerminalConfig defines terminal host behavior.
type TerminalConfig struct {
	// KeyHoldMs is how long a key counts as held after its last press.
	// Terminals only report presses and auto-repeat, never releases.
	KeyHoldMs int `yaml:"key_hold_ms" toml:"key_hold_ms"`
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)
	check(c.Window.FPS > 0, "window.fps must be positive, got %d", c.Window.FPS)
	check(c.Paddles.Width > 0, "paddles.width must be positive, got %g", c.Paddles.Width)
	check(c.Paddles.Height > 0, "paddles.height must be positive, got %g", c.Paddles.Height)
	check(c.Paddles.Height <= float64(c.Window.Height),
		"paddles.height %g exceeds window.height %d", c.Paddles.Height, c.Window.Height)
	check(c.Paddles.Inset >= 0, "paddles.inset must not be negative, got %g", c.Paddles.Inset)
	check(c.Paddles.MoveSpeed > 0, "paddles.move_speed must be positive, got %g", c.Paddles.MoveSpeed)
	check(c.CPU.Speed > 0, "cpu.speed must be positive, got %g", c.CPU.Speed)
	check(c.Ball.Radius > 0, "ball.radius must be positive, got %g", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball.speed must be positive, got %g", c.Ball.Speed)
	check(c.Ball.MaxBounceAngle > 0 && c.Ball.MaxBounceAngle < 90,
		"ball.max_bounce_angle must be in (0, 90), got %g", c.Ball.MaxBounceAngle)
	check(c.Ball.MinHorizontal >= 0 && c.Ball.MinHorizontal <= 1,
		"ball.min_horizontal must be in [0, 1], got %g", c.Ball.MinHorizontal)
	check(c.Rules.WinScore > 0, "rules.win_score must be positive, got %d", c.Rules.WinScore)
	check(c.Rules.CollisionCooldownMs >= 0,
		"rules.collision_cooldown_ms must not be negative, got %d", c.Rules.CollisionCooldownMs)
	check(c.Terminal.KeyHoldMs >= 0, "terminal.key_hold_ms must not be negative, got %d", c.Terminal.KeyHoldMs)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
