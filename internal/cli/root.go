// Package cli wires the cobra command surface around the analysis engine.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfsum/internal/config"
	"tfsum/internal/ui"
	"tfsum/internal/version"
)

var (
	noColor bool

	// Active configuration, loaded once before any command runs.
	appCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tfsum",
	Short: "Summarize Terraform plan output",
	Long: `tfsum parses Terraform plan JSON (terraform show -json) and prints a
summary of what will be created, modified, destroyed, or left unchanged,
together with a coarse impact classification per change.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, created, err := config.LoadConfig()
		if err != nil {
			// A broken config never blocks analysis; fall back to defaults.
			fmt.Fprintf(os.Stderr, "Warning: %v, using default configuration\n", err)
			cfg = config.DefaultConfig()
		}
		appCfg = cfg
		ui.InitColors(cfg)
		if created {
			path, _ := config.ConfigFilePath()
			fmt.Fprintf(os.Stderr, "Created default configuration at %s\n", path)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(generateCmd)
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadedConfig returns the active configuration, falling back to defaults.
func loadedConfig() *config.Config {
	if appCfg != nil {
		return appCfg
	}
	return config.DefaultConfig()
}
