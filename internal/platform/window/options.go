// Package window runs the game in a desktop window with Ebitengine.
// The window host is only compiled with the "ebiten" build tag; without
// it Run reports ErrUnavailable.
package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// ErrUnavailable is returned by Run in builds without the window host.
var ErrUnavailable = errors.New("window: built without the ebiten tag, rebuild with -tags ebiten")

// Options configure the window host.
type Options struct {
	Config config.Config
	Seed   int64 // Zero picks a time-based seed
	Logger *log.Logger
}
