package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  Space      - Start / play again
  P          - Pause
  Q/Ctrl+C   - Quit

The terminal owns the screen while playing, so logs only go to
--log-file.

Examples:
  pong play
  pong play --difficulty easy
  pong play --config ./pong.toml --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pong", nil)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// The first resize message replaces this guess
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	logger.Info("starting terminal match", "config", source, "size", [2]int{width, height}, "seed", flagSeed)

	return tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
		Width:  width,
		Height: height,
	})
}
