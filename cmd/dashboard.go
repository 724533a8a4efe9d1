package cmd

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive fee dashboard",
		Long: `Opens the interactive dashboard. The live status strip refreshes on
its own; the tabs hold the recommendation, custom fee estimate, priority
comparison, history and miner target views.

Keys: 1-5 or tab to switch tabs, r to refresh, h for help, L for the
activity log, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.RunDashboard(cmd.Context())
		},
	}
}
