package cmd

import (
	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [CODE|NAME...]",
	Short: "Show labels for accessibility event type codes",
	Long: `Print the label for each event type code or name. Codes outside the known set
are labelled "unknown (<code>)". With no arguments, every known type is listed.

Examples:
  a11y-reporter classify 1 4096
  a11y-reporter classify view_scrolled
  a11y-reporter classify`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runClassify(cmd *cobra.Command, args []string) error {
	var types []model.EventType
	if len(args) == 0 {
		types = model.KnownEventTypes()
	}
	for _, arg := range args {
		t, err := model.ParseEventType(arg)
		if err != nil {
			return err
		}
		types = append(types, t)
	}

	entries := make([]output.ClassifyEntry, 0, len(types))
	for _, t := range types {
		entries = append(entries, output.ClassifyEntry{Code: int(t), Label: t.String(), Known: t.Known()})
	}
	return output.Fprint(cmd.OutOrStdout(), entries)
}
