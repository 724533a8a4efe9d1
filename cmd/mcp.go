package cmd

import (
	"feeboard/internal/mcptools"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the fee tools over MCP (stdio)",
		Long: `Starts an MCP server on stdin/stdout exposing fee_recommend,
fee_estimate, fee_compare, fee_live_status, fee_mining_target and
fee_history, so AI assistants can query the backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication()
			if err != nil {
				return err
			}
			s := mcptools.NewServer(mcptools.NewFeeTools(application.FeeAPI()), rootCmd.Version)
			return server.ServeStdio(s)
		},
	}
}
