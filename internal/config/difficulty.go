package config

import "fmt"

// DifficultyPreset represents a named CPU strength.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// cpuSpeedFactor returns the CPU paddle speed multiplier for a preset.
func cpuSpeedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only the CPU paddle is affected; normal leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.CPU.Speed *= cpuSpeedFactor(preset)
}
