package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying --config, --difficulty and
--fps. The output is a valid config file.

Examples:
  pong config
  pong config --difficulty hard
  pong config --format toml > ~/.pong/pong.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (use yaml or toml)", flagFormat)
	}

	cfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Both formats use # comments
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	return config.Encode(out, cfg, format)
}
