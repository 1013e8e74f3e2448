package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration: an 800x600 field at 60 FPS,
// first to 10 points.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			FPS:        60,
			Fullscreen: false,
			Title:      "Pong",
		},
		Paddles: PaddleConfig{
			Width:     10,
			Height:    80,
			Inset:     5,
			MoveSpeed: 6,
		},
		CPU: CPUConfig{
			Speed: 6,
		},
		Ball: BallConfig{
			Radius:         6,
			Speed:          10,
			MaxBounceAngle: 75,
			MinHorizontal:  0.7,
			ServeVY:        1,
		},
		Rules: RulesConfig{
			WinScore:            10,
			CollisionCooldownMs: 50,
		},
		Terminal: TerminalConfig{
			KeyHoldMs: 120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
