package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/a11y-reporter/internal/config"
	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/mj1618/a11y-reporter/internal/version"
	"github.com/spf13/cobra"

	// Registers the recorded-session host backend.
	_ "github.com/mj1618/a11y-reporter/internal/platform/replay"
)

var rootCmd = &cobra.Command{
	Use:   "a11y-reporter",
	Short: "Log accessibility events as a passive listener",
	Long: `A passive accessibility listener. It declares interest in every event type when a
host connects it, then writes one verbose log line per event. The inspector revision
also lists the on-screen windows and dumps the active window's node tree on every event.

Hosts are pluggable backends; the built-in "replay" backend plays recorded sessions.`,
	SilenceUsage: true,
}

// cfg is the loaded configuration, available to subcommands after
// PersistentPreRunE.
var cfg = config.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file (default $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: verbose, debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flags directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}

		path, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if lvl, _ := rootCmd.PersistentFlags().GetString("log-level"); lvl != "" {
			loaded.Log.Level = lvl
		}
		if lf, _ := rootCmd.PersistentFlags().GetString("log-format"); lf != "" {
			loaded.Log.Format = lf
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	}
}

// newLogger builds the process logger from the loaded configuration. Reporter
// output goes to stderr so stdout stays machine-readable.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
}
