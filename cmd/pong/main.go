// pong is a single-player Pong game against a CPU paddle.
//
// Usage:
//
//	pong                 - Play in the terminal
//	pong play            - Same as above
//	pong window          - Play in a desktop window (build with -tags ebiten)
//	pong serve           - Start SSH server for remote play
//	pong config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override frames per second
//	--seed <value>        - Set RNG seed for reproducible serves
//	--config <path>       - Use a YAML or TOML config file
//	--difficulty <name>   - CPU difficulty: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - Play against the CPU in your terminal",
	Long: `Pong is the classic two-paddle game: you control the left paddle,
the CPU controls the right one. First to 10 points wins.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pong
  pong --difficulty hard
  pong window --seed 42
  pong serve --ssh :2222
  pong config --format toml > pong.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the configuration and applies the global flags.
func loadGameConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Window.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// newLogger builds the logger for a command. fallback receives the logs
// when --log-file is not set.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Level:    flagLogLevel,
		File:     flagLogFile,
		Prefix:   prefix,
		Fallback: fallback,
	})
}
