// dasher is a parallax side-scrolling runner for the terminal, a desktop
// window, or remote players over SSH.
//
// Usage:
//
//	dasher list               - List available variants
//	dasher play [variant]     - Play in the terminal
//	dasher window [variant]   - Play in a desktop window
//	dasher serve              - Start SSH server for remote play
//	dasher config [variant]   - Print or check a variant's config
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/games/dasher"
	"github.com/vovakirdan/tui-dasher/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dasher - jump the nebulae, reach the finish line",
	Long: `Dasher is a side-scrolling runner. Scarfy runs past three parallax
bands of city while nebulae scroll in from the right; one touch ends the
run, crossing the finish line wins it.

Available commands:
  list     - Show all variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print or check a variant's config

Examples:
  dasher play
  dasher play dasher_endless --difficulty hard
  dasher window
  dasher serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger at the given level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "dasher",
	}), nil
}

// resolveVariant returns the variant named in args, or the default one.
func resolveVariant(args []string) (string, error) {
	variant := config.VariantDasher
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return "", fmt.Errorf("unknown variant %q, run 'dasher list' to see available variants", variant)
	}
	return variant, nil
}

// newGame creates a variant with the CLI's config overrides applied.
func newGame(variant, configPath, difficulty string) (*dasher.Game, error) {
	dasher.SetConfigPath(configPath)
	dasher.SetDifficultyPreset(difficulty)

	g, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*dasher.Game)
	if !ok {
		return nil, fmt.Errorf("variant %q is not a dasher game", variant)
	}
	return game, nil
}

// addGameFlags registers the config and difficulty flags on cmd.
func addGameFlags(cmd *cobra.Command, configPath, difficulty *string) {
	cmd.Flags().StringVar(configPath, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}
