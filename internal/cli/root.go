// Package cli provides the pagenav command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/pagenav/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

type configKey struct{}

// NewRootCmd creates the root command. Without a subcommand it runs the
// navigator.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
	)
	rootCmd := &cobra.Command{
		Use:   "pagenav",
		Short: "Form builder page navigator",
		Long: `pagenav shows the pages of a form as a strip you can click, drag
and reorder, with a per-page settings menu.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNavigator(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/pagenav/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewActionsCommand())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config loaded by the root command.
func GetConfig(ctx context.Context) (config.Config, bool) {
	cfg, ok := ctx.Value(configKey{}).(config.Config)
	return cfg, ok
}
