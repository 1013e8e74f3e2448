package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a match in a desktop window sized from the config
(800x600 by default).

The window host needs Ebitengine and is only built with the ebiten tag:
  go build -tags ebiten ./cmd/pong

Controls:
  W/Up, S/Down  - Move paddle
  Space/Enter   - Start / play again
  P             - Pause
  Q/Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pong", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger.Info("opening window", "config", source,
		"width", cfg.Window.Width, "height", cfg.Window.Height, "fps", cfg.Window.FPS)

	return window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
}
