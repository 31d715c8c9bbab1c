package cmd

import (
	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/mj1618/a11y-reporter/internal/reporter"
	"github.com/spf13/cobra"
)

var serviceInfoCmd = &cobra.Command{
	Use:   "service-info",
	Short: "Show the service configuration declared on connect",
	Long:  "Print the event types, behavioural flags and feedback type the reporter submits to its host when connected.",
	RunE:  runServiceInfo,
}

func init() {
	rootCmd.AddCommand(serviceInfoCmd)
	serviceInfoCmd.Flags().String("revision", "", "Reporter revision: 1 (basic) or 2 (inspector); default from config")
	serviceInfoCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runServiceInfo(cmd *cobra.Command, args []string) error {
	opts, err := reporterOptions(cmd)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), reporter.ServiceInfoFor(opts.Revision).Describe())
}
