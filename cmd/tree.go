package cmd

import (
	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/mj1618/a11y-reporter/internal/platform/replay"
	"github.com/mj1618/a11y-reporter/internal/server"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree FILE",
	Short: "Show the node tree recorded with an event",
	Long:  "Flatten the node tree recorded with one event step into a list with depth and class-name paths.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Int("step", -1, "Step index (default: first step with a tree)")
	treeCmd.Flags().Int("against", -1, "Show node changes from this earlier step's tree")
	treeCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runTree(cmd *cobra.Command, args []string) error {
	step, _ := cmd.Flags().GetInt("step")
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if against, _ := cmd.Flags().GetInt("against"); against >= 0 {
		diff, err := server.TreeDiff(rec, against, step)
		if err != nil {
			return err
		}
		return output.Fprint(cmd.OutOrStdout(), diff)
	}
	result, err := server.TreeAt(rec, step)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), result)
}
