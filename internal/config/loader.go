package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no file was found.
const SourceEmbedded = "embedded"

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the file syntax from the extension; anything that is
// not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the Pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/pong.{yaml,toml} -> ./configs/pong.{yaml,toml} -> embedded default.
// Files only need to contain the fields they override.
func Load(customPath string) (Config, string, error) {
	// Try custom path first; a broken explicit file is an error
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	// Try user and local config directories, skipping unreadable files
	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile decodes one file on top of the defaults and validates the result.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Decode(data, FormatForPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format on top of Default().
func Decode(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("config: unknown format %q", format)
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("config: cannot encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
	return nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".pong", "pong.yaml"),
			filepath.Join(home, ".pong", "pong.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "pong.yaml"),
		filepath.Join("configs", "pong.toml"),
	)
}
