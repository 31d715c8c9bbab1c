package cmd

import (
	"fmt"

	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/mj1618/a11y-reporter/internal/platform/replay"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List windows recorded in a session",
	Long:  "List the windows a recording reports, either at one event step or deduplicated by window ID across the whole session.",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Int("step", -1, "Only list windows at this step (default: all steps)")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	step, _ := cmd.Flags().GetInt("step")
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	if step >= 0 {
		if step >= len(rec.Steps) {
			return fmt.Errorf("step %d out of range (recording has %d steps)", step, len(rec.Steps))
		}
		windows := rec.Steps[step].Windows
		if windows == nil {
			windows = []model.Window{}
		}
		return output.Fprint(cmd.OutOrStdout(), windows)
	}

	// Aggregate to unique windows, keeping the first snapshot of each
	seen := make(map[int]bool)
	windows := []model.Window{}
	for _, s := range rec.Steps {
		for _, w := range s.Windows {
			if !seen[w.ID] {
				seen[w.ID] = true
				windows = append(windows, w)
			}
		}
	}
	return output.Fprint(cmd.OutOrStdout(), windows)
}
