package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/rollcast/core"
	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunManager
}

// applySeriesOverride points the config at a different series file, keeping
// the derived display name in sync.
func applySeriesOverride(cfg *contract.Config, request mcp.CallToolRequest) {
	if p := request.GetString("series_path", ""); p != "" {
		cfg.SeriesPath = p
		cfg.SeriesName = schema.SeriesNameFromPath(p)
	}
}

func (h *toolHandler) provider(cfg *contract.Config) contract.SeriesProvider {
	return contract.NewLocalCSVProvider(cfg.ValueColumn)
}

func (h *toolHandler) handleRunForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applySeriesOverride(cfg, request)
	if p := request.GetString("predictor", ""); p != "" {
		cfg.Predictor = schema.PredictorKind(p)
	}
	if w := request.GetInt("window", 0); w > 0 {
		cfg.WindowSize = w
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, _, err := core.GetForecastResult(core.WithSuppressHeader(ctx), cfg, h.provider(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEvaluateForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applySeriesOverride(cfg, request)
	if p := request.GetString("predictor", ""); p != "" {
		cfg.Predictor = schema.PredictorKind(p)
	}
	if w := request.GetInt("window", 0); w > 0 {
		cfg.WindowSize = w
	}
	if s := request.GetFloat("split", 0); s > 0 && s < 1 {
		cfg.SplitFraction = s
	}
	cfg.Normalize = request.GetBool("normalize", cfg.Normalize)

	result, _, err := core.GetEvalResult(core.WithSuppressHeader(ctx), cfg, h.provider(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleInspectWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applySeriesOverride(cfg, request)
	if w := request.GetInt("window", 0); w > 0 {
		cfg.WindowSize = w
	}
	if b := request.GetInt("batch", 0); b > 0 {
		cfg.BatchSize = b
	}
	if s := request.GetInt("seed", 0); s != 0 {
		cfg.Seed = int64(s)
	}

	result, _, err := core.GetWindowsResult(core.WithSuppressHeader(ctx), cfg, h.provider(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("window inspection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTuneWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applySeriesOverride(cfg, request)
	if p := request.GetString("predictor", ""); p != "" {
		cfg.Predictor = schema.PredictorKind(p)
	}
	if t := request.GetFloat("target_accuracy", 0); t > 0 {
		cfg.TargetAccuracy = t
	}

	windows, err := contract.ParseWindowList(request.GetString("windows", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid windows parameter: %v", err)), nil
	}
	if len(windows) == 0 {
		return mcp.NewToolResultError("windows parameter is required, e.g. '7,14,30'"), nil
	}
	cfg.TuneWindows = windows

	result, _, err := core.GetTuneResult(core.WithSuppressHeader(ctx), cfg, h.provider(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("window tuning failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
