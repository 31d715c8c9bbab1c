package cmd

import (
	"log/slog"

	"github.com/mj1618/a11y-reporter/internal/platform"
	"github.com/mj1618/a11y-reporter/internal/reporter"
	"github.com/spf13/cobra"
)

// reporterOptions merges the --revision and --max-depth flags, when the
// command has them, over the loaded config.
func reporterOptions(cmd *cobra.Command) (reporter.Options, error) {
	opts, err := cfg.ReporterOptions()
	if err != nil {
		return reporter.Options{}, err
	}
	if f := cmd.Flags().Lookup("revision"); f != nil && f.Value.String() != "" {
		rev, err := reporter.ParseRevision(f.Value.String())
		if err != nil {
			return reporter.Options{}, err
		}
		opts.Revision = rev
	}
	if f := cmd.Flags().Lookup("max-depth"); f != nil && f.Changed {
		depth, _ := cmd.Flags().GetInt("max-depth")
		opts.MaxDepth = depth
	}
	return opts, nil
}

// loggerSetter is implemented by sessions that emit their own diagnostics.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// openSession opens source with the named backend and hands it the logger.
func openSession(backend, source string, logger *slog.Logger) (platform.Session, error) {
	sess, err := platform.Open(backend, source)
	if err != nil {
		return nil, err
	}
	if ls, ok := sess.(loggerSetter); ok {
		ls.SetLogger(logger)
	}
	return sess, nil
}
