package cmd

import (
	"os"

	"feeboard/internal/app"

	"github.com/spf13/cobra"
)

var (
	configPath string
	baseURL    string
	debugMode  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "feeboard",
	Short: "Bitcoin fee recommendations in your terminal",
	Long: `feeboard talks to a fee-recommendation backend and shows its
recommendations, custom-fee estimates, priority comparisons, projected
mempool blocks, recent history and live network status.

Run 'feeboard dashboard' for the interactive view, or use the one-shot
commands for scripting.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid input, unreachable backend)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "feeboard version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps configuration and services from the global flags.
func newApplication() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(configPath, baseURL, debugMode))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file layered over ~/.config/feeboard and ./.feeboard")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (overrides backend.baseURL)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newEstimateCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newMiningTargetCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
