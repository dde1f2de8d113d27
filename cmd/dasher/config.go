package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dasher/internal/config"
)

var flagCheckPath string

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print or check a variant's config",
	Long: `Print the embedded default config for a variant, ready to copy to
~/.dasher/configs/<variant>.yaml and edit. With --check, load the given
file and report every problem in it.

Examples:
  dasher config > ~/.dasher/configs/dasher.yaml
  dasher config dasher_endless
  dasher config --check ./my-dasher.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheckPath, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(cmd *cobra.Command, args []string) error {
	variant, err := resolveVariant(args)
	if err != nil {
		return err
	}

	if flagCheckPath == "" {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(variant))
		return err
	}

	cfg, err := config.Load(variant, flagCheckPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s:\n%w", flagCheckPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", flagCheckPath)
	return nil
}
