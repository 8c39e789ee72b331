// Package cli implements the paramz command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/paramz/internal/config"
	"github.com/aidanlsb/paramz/internal/logging"
	"github.com/aidanlsb/paramz/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	logger             *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "paramz",
	Short: "paramz - declarative command-line parameters",
	Long: `paramz turns a declared set of parameters into a flag parser with
automatic help, per-flag validation rules and value dispatch.

Run 'paramz hello -h' to see a generated help page.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "completion", "version":
			return nil
		}

		return bootstrap(cmd)
	},
}

// Execute runs the CLI. Errors not already shown are reported on stderr
// (or as a JSON envelope with --json) before being returned.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil || errors.Is(err, errReported) {
		return err
	}
	if isJSONOutput() {
		outputError(rootCmd.OutOrStdout(), errorCode(err), err.Error(), nil, "")
		return err
	}
	ui.Diagnose(rootCmd.ErrOrStderr(), err.Error())
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $"+config.EnvConfigPath+" or ~/.config/paramz/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// bootstrap loads the config named by the global flags and applies its
// theme and logging settings.
func bootstrap(cmd *cobra.Command) error {
	var err error
	cfg, resolvedConfigPath, _, err = config.LoadAllowMissing(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ui.ConfigureTheme(cfg.UI.Accent)
	ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
	logger = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	logger.Debug("config loaded", "path", resolvedConfigPath)
	return nil
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// getLogger returns the configured logger.
func getLogger() *slog.Logger {
	if logger == nil {
		return logging.New("", "", os.Stderr)
	}
	return logger
}
