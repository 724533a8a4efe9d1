package cmd

import (
	"time"

	"feeboard/internal/app"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		interval    time.Duration
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the live network status without a UI",
		Long: `Polls the backend's live status on a fixed schedule, printing one line
per update until interrupted. With --metrics-addr the latest figures are
exported as Prometheus gauges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			return application.RunWatch(cmd.Context(), app.WatchOptions{
				Interval:    interval,
				MetricsAddr: metricsAddr,
				Out:         cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval (default from live.pollInterval)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9100")
	return cmd
}
