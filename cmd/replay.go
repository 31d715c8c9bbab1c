package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/mj1618/a11y-reporter/internal/platform"
	"github.com/mj1618/a11y-reporter/internal/platform/replay"
	"github.com/mj1618/a11y-reporter/internal/reporter"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Play a recorded session through the reporter",
	Long: `Connect the reporter to a recorded host session and deliver every recorded
callback to it. Reporter lines are logged to stderr at verbose level; a summary
is printed to stdout in the selected --format.

With --watch, the recording is played again every time the file changes until
Ctrl+C.

Examples:
  a11y-reporter replay session.yaml
  a11y-reporter replay session.json --revision 1
  a11y-reporter replay session.yaml --max-depth 3 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().String("revision", "", "Reporter revision: 1 (basic) or 2 (inspector); default from config")
	replayCmd.Flags().Int("max-depth", 0, "Max node levels dumped per event (0 = unlimited)")
	replayCmd.Flags().String("backend", replay.BackendName, "Host backend used to open FILE")
	replayCmd.Flags().Bool("watch", false, "Replay again whenever FILE changes")
	replayCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

// handleStatser is implemented by sessions that track node handles.
type handleStatser interface {
	HandleStats() replay.HandleStats
}

// stepCounter is implemented by sessions that count delivered steps.
type stepCounter interface {
	StepsDelivered() int
}

func runReplay(cmd *cobra.Command, args []string) error {
	path := args[0]
	backend, _ := cmd.Flags().GetString("backend")
	watch, _ := cmd.Flags().GetBool("watch")

	opts, err := reporterOptions(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	play := func() error {
		result, err := replayOnce(ctx, backend, path, logger, opts)
		if err != nil {
			return err
		}
		return output.Fprint(cmd.OutOrStdout(), result)
	}

	if err := play(); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	logger.Info("watching for changes", "path", path)
	return replay.Watch(ctx, path, func() {
		if err := play(); err != nil {
			logger.Error("replay failed", "path", path, "error", err)
		}
	})
}

func replayOnce(ctx context.Context, backend, path string, logger *slog.Logger, opts reporter.Options) (output.ReplayResult, error) {
	sess, err := openSession(backend, path, logger)
	if err != nil {
		return output.ReplayResult{}, err
	}
	svc, err := reporter.Run(ctx, sess, logger, opts)
	if err != nil {
		return output.ReplayResult{}, fmt.Errorf("replay %s: %w", path, err)
	}
	return summarize(sess, svc, path), nil
}

func summarize(sess platform.Session, svc *reporter.Service, path string) output.ReplayResult {
	result := output.ReplayResult{
		Session:   sess.ID(),
		Recording: path,
		Revision:  int(svc.Revision()),
		Events:    svc.Stats().Events,
		State:     svc.State().String(),
	}
	if rs, ok := sess.(*replay.Session); ok {
		result.Recording = rs.Recording().Name
	}
	if sc, ok := sess.(stepCounter); ok {
		result.Steps = sc.StepsDelivered()
	}
	if hs, ok := sess.(handleStatser); ok {
		result.Handles = hs.HandleStats()
	}
	return result
}
