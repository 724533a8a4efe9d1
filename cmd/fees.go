package cmd

import (
	"context"
	"fmt"
	"io"

	"feeboard/internal/api"
	"feeboard/internal/params"
	"feeboard/internal/render"
	"feeboard/internal/tui/view"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// outputWidth is the card width used by the one-shot commands.
const outputWidth = 80

// printer writes a command result either as painted cards or as JSON.
type printer struct {
	out    io.Writer
	asJSON bool
}

func (p printer) emit(raw any, painted func() string) error {
	if p.asJSON {
		data, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(data))
		return err
	}
	_, err := fmt.Fprintln(p.out, painted())
	return err
}

// fetchFeeAPI bootstraps the application and hands out its backend client.
func fetchFeeAPI() (api.FeeAPI, error) {
	application, err := newApplication()
	if err != nil {
		return nil, err
	}
	return application.FeeAPI(), nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newRecommendCmd() *cobra.Command {
	var priority, explain string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show the fee recommendation for a priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feeAPI, err := fetchFeeAPI()
			if err != nil {
				return err
			}
			return runRecommend(cmdContext(cmd), feeAPI, printer{out: cmd.OutOrStdout(), asJSON: asJSON}, priority, explain)
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", string(api.PriorityMedium), "Priority tier: fast, medium or slow")
	cmd.Flags().StringVarP(&explain, "explain", "e", "", "Explanation mode: none or llm")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw backend record as JSON")
	return cmd
}

func runRecommend(ctx context.Context, feeAPI api.FeeAPI, p printer, priorityRaw, explainRaw string) error {
	priority, err := params.ParsePriority(priorityRaw)
	if err != nil {
		return err
	}
	explain, err := params.ParseExplainMode(explainRaw)
	if err != nil {
		return err
	}
	rec, err := feeAPI.Recommend(ctx, priority, explain)
	if err != nil {
		return err
	}
	return p.emit(rec, func() string {
		return view.RecommendationCard(render.Recommendation(render.RecommendTitle(priority), rec), outputWidth, false)
	})
}

func newEstimateCmd() *cobra.Command {
	var fee, explain string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate confirmation time for a custom fee",
		Long: `Evaluates a custom fee rate in sat/vB. The value must be a number
greater than zero; nothing is sent to the backend otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feeAPI, err := fetchFeeAPI()
			if err != nil {
				return err
			}
			return runEstimate(cmdContext(cmd), feeAPI, printer{out: cmd.OutOrStdout(), asJSON: asJSON}, fee, explain)
		},
	}
	cmd.Flags().StringVarP(&fee, "fee", "f", "", "Fee rate in sat/vB (required)")
	cmd.Flags().StringVarP(&explain, "explain", "e", "", "Explanation mode: none or llm")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw backend record as JSON")
	return cmd
}

func runEstimate(ctx context.Context, feeAPI api.FeeAPI, p printer, feeRaw, explainRaw string) error {
	fee, err := params.ValidateCustomFee(feeRaw)
	if err != nil {
		return err
	}
	explain, err := params.ParseExplainMode(explainRaw)
	if err != nil {
		return err
	}
	rec, err := feeAPI.Estimate(ctx, fee, explain)
	if err != nil {
		return err
	}
	return p.emit(rec, func() string {
		return view.RecommendationCard(render.Recommendation(render.EstimateTitle(fee), rec), outputWidth, false)
	})
}

func newCompareCmd() *cobra.Command {
	var explain string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the fast, medium and slow recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feeAPI, err := fetchFeeAPI()
			if err != nil {
				return err
			}
			return runCompare(cmdContext(cmd), feeAPI, printer{out: cmd.OutOrStdout(), asJSON: asJSON}, explain)
		},
	}
	cmd.Flags().StringVarP(&explain, "explain", "e", "", "Explanation mode: none or llm")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw backend record as JSON")
	return cmd
}

func runCompare(ctx context.Context, feeAPI api.FeeAPI, p printer, explainRaw string) error {
	explain, err := params.ParseExplainMode(explainRaw)
	if err != nil {
		return err
	}
	res, err := feeAPI.Compare(ctx, explain)
	if err != nil {
		return err
	}
	return p.emit(res, func() string {
		return view.CompareGrid(render.Compare(res), outputWidth)
	})
}

func newMiningTargetCmd() *cobra.Command {
	var count, fee, target string
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "mining-target",
		Aliases: []string{"miner"},
		Short:   "Show the projected mempool blocks",
		Long: `Shows the next projected mempool blocks. --count is clamped to 1..6,
a non-positive --fee is dropped, and --target-blocks below 1 is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feeAPI, err := fetchFeeAPI()
			if err != nil {
				return err
			}
			return runMiningTarget(cmdContext(cmd), feeAPI, printer{out: cmd.OutOrStdout(), asJSON: asJSON}, count, fee, target)
		},
	}
	cmd.Flags().StringVarP(&count, "count", "n", "", "Number of blocks to show (1-6, default 3)")
	cmd.Flags().StringVarP(&fee, "fee", "f", "", "Fee rate in sat/vB to evaluate against the blocks")
	cmd.Flags().StringVarP(&target, "target-blocks", "t", "", "Target block count (default 1)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw backend record as JSON")
	return cmd
}

func runMiningTarget(ctx context.Context, feeAPI api.FeeAPI, p printer, countRaw, feeRaw, targetRaw string) error {
	count, q := params.MinerQuery(countRaw, feeRaw, targetRaw)
	res, err := feeAPI.MiningTarget(ctx, q)
	if err != nil {
		return err
	}
	if len(res.Blocks) > count {
		res.Blocks = res.Blocks[:count]
	}
	return p.emit(res, func() string {
		return view.MinerGrid(render.MinerTargets(res, count), outputWidth)
	})
}

func newHistoryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the recent recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feeAPI, err := fetchFeeAPI()
			if err != nil {
				return err
			}
			return runHistory(cmdContext(cmd), feeAPI, printer{out: cmd.OutOrStdout(), asJSON: asJSON})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw backend record as JSON")
	return cmd
}

func runHistory(ctx context.Context, feeAPI api.FeeAPI, p printer) error {
	res, err := feeAPI.History(ctx)
	if err != nil {
		return err
	}
	return p.emit(res, func() string {
		return view.HistoryList(render.History(res), outputWidth)
	})
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feeAPI, err := fetchFeeAPI()
			if err != nil {
				return err
			}
			return runHealth(cmdContext(cmd), feeAPI, cmd.OutOrStdout())
		},
	}
}

func runHealth(ctx context.Context, feeAPI api.FeeAPI, out io.Writer) error {
	hs, err := feeAPI.Health(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "backend status: %s\n", hs.Status)
	return err
}
