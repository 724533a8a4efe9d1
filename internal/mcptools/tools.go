package mcptools

import (
	"context"
	"fmt"

	"feeboard/internal/api"
	"feeboard/internal/params"
	"feeboard/pkg/logging"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const subsystem = "MCP"

// FeeTools exposes the fee workflows as MCP tools
type FeeTools struct {
	feeAPI api.FeeAPI
}

// NewFeeTools creates fee tools backed by feeAPI
func NewFeeTools(feeAPI api.FeeAPI) *FeeTools {
	return &FeeTools{feeAPI: feeAPI}
}

// GetTools returns all fee tools
func (ft *FeeTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("fee_recommend",
			mcp.WithDescription("Get the fee recommendation for a priority tier"),
			mcp.WithString("priority",
				mcp.Required(),
				mcp.Description("Priority tier: fast, medium or slow"),
				mcp.Enum("fast", "medium", "slow"),
			),
			mcp.WithString("explain",
				mcp.Description("Explanation mode: none or llm"),
				mcp.Enum("none", "llm"),
			),
		),
		mcp.NewTool("fee_estimate",
			mcp.WithDescription("Estimate confirmation time for a custom fee in sat/vB"),
			mcp.WithNumber("fee",
				mcp.Required(),
				mcp.Description("Fee rate in sat/vB, must be greater than 0"),
			),
			mcp.WithString("explain",
				mcp.Description("Explanation mode: none or llm"),
				mcp.Enum("none", "llm"),
			),
		),
		mcp.NewTool("fee_compare",
			mcp.WithDescription("Compare the fast, medium and slow recommendations"),
			mcp.WithString("explain",
				mcp.Description("Explanation mode: none or llm"),
				mcp.Enum("none", "llm"),
			),
		),
		mcp.NewTool("fee_live_status",
			mcp.WithDescription("Get the latest polled mempool and fee snapshot"),
		),
		mcp.NewTool("fee_mining_target",
			mcp.WithDescription("Get projected mempool blocks and evaluate an optional fee against them"),
			mcp.WithNumber("count",
				mcp.Description("Number of blocks to return, clamped to 1-6 (default 3)"),
			),
			mcp.WithNumber("fee",
				mcp.Description("Fee rate in sat/vB to evaluate; ignored unless greater than 0"),
			),
			mcp.WithNumber("target_blocks",
				mcp.Description("Desired confirmation within N blocks (default 1)"),
			),
		),
		mcp.NewTool("fee_history",
			mcp.WithDescription("Get the most recent recommendations and a short insight"),
		),
	}
}

// ServerTools pairs every tool with its handler
func (ft *FeeTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		"fee_recommend":     ft.HandleRecommend,
		"fee_estimate":      ft.HandleEstimate,
		"fee_compare":       ft.HandleCompare,
		"fee_live_status":   ft.HandleLiveStatus,
		"fee_mining_target": ft.HandleMiningTarget,
		"fee_history":       ft.HandleHistory,
	}
	var out []server.ServerTool
	for _, tool := range ft.GetTools() {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// NewServer creates an MCP server with every fee tool registered
func NewServer(ft *FeeTools, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"feeboard",
		version,
		server.WithToolCapabilities(true),
	)
	s.AddTools(ft.ServerTools()...)
	return s
}

// HandleRecommend handles the fee_recommend tool call
func (ft *FeeTools) HandleRecommend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("priority")
	if err != nil {
		return mcp.NewToolResultError("priority is required"), nil
	}
	priority, err := params.ParsePriority(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	explain, err := explainArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := ft.feeAPI.Recommend(ctx, priority, explain)
	if err != nil {
		return toolError("Failed to get recommendation", err), nil
	}
	return jsonResult(rec)
}

// HandleEstimate handles the fee_estimate tool call
func (ft *FeeTools) HandleEstimate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, present := argString(req, "fee")
	if !present {
		return mcp.NewToolResultError("fee is required"), nil
	}
	fee, err := params.ValidateCustomFee(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	explain, err := explainArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := ft.feeAPI.Estimate(ctx, fee, explain)
	if err != nil {
		return toolError("Failed to estimate fee", err), nil
	}
	return jsonResult(rec)
}

// HandleCompare handles the fee_compare tool call
func (ft *FeeTools) HandleCompare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	explain, err := explainArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := ft.feeAPI.Compare(ctx, explain)
	if err != nil {
		return toolError("Failed to compare fees", err), nil
	}
	return jsonResult(res)
}

// HandleLiveStatus handles the fee_live_status tool call
func (ft *FeeTools) HandleLiveStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := ft.feeAPI.LiveStatus(ctx)
	if err != nil {
		return toolError("Failed to get live status", err), nil
	}
	return jsonResult(st)
}

// HandleMiningTarget handles the fee_mining_target tool call
func (ft *FeeTools) HandleMiningTarget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	countRaw, _ := argString(req, "count")
	feeRaw, _ := argString(req, "fee")
	targetRaw, _ := argString(req, "target_blocks")
	count, q := params.MinerQuery(countRaw, feeRaw, targetRaw)

	res, err := ft.feeAPI.MiningTarget(ctx, q)
	if err != nil {
		return toolError("Failed to get mining targets", err), nil
	}
	if len(res.Blocks) > count {
		res.Blocks = res.Blocks[:count]
	}
	return jsonResult(res)
}

// HandleHistory handles the fee_history tool call
func (ft *FeeTools) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := ft.feeAPI.History(ctx)
	if err != nil {
		return toolError("Failed to get history", err), nil
	}
	return jsonResult(res)
}

func explainArg(req mcp.CallToolRequest) (api.ExplainMode, error) {
	raw, _ := argString(req, "explain")
	return params.ParseExplainMode(raw)
}

// argString returns an argument as the text a user would have typed, so
// numbers and strings go through the same validators.
func argString(req mcp.CallToolRequest, key string) (string, bool) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return api.FormatNumber(val), true
	case int:
		return fmt.Sprintf("%d", val), true
	case int64:
		return fmt.Sprintf("%d", val), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}

func toolError(prefix string, err error) *mcp.CallToolResult {
	logging.Warn(subsystem, "%s: %v", prefix, err)
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", prefix, err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}
