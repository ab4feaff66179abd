// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Rollcast MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Rollcast Forecast Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: run_forecast ---
	s.AddTool(mcp.NewTool("run_forecast",
		mcp.WithDescription("Roll a one-step forecast across a time series using a classical predictor."),
		mcp.WithString("series_path", mcp.Description("Path to the series CSV file (defaults to the configured series if not specified).")),
		mcp.WithString("predictor", mcp.Description("Predictor kind (naive, sma, wma, ema, drift, trend). Defaults to 'naive'."), mcp.Enum("naive", "sma", "wma", "ema", "drift", "trend")),
		mcp.WithNumber("window", mcp.Description("Window size used for each prediction.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of points returned.")),
	), h.handleRunForecast)

	// --- 2. Tool: evaluate_forecast ---
	s.AddTool(mcp.NewTool("evaluate_forecast",
		mcp.WithDescription("Score a predictor against a held-out test split with MAE, RMSE, MAPE, and accuracy."),
		mcp.WithString("series_path", mcp.Description("Path to the series CSV file.")),
		mcp.WithString("predictor", mcp.Description("Predictor kind (naive, sma, wma, ema, drift, trend)."), mcp.Enum("naive", "sma", "wma", "ema", "drift", "trend")),
		mcp.WithNumber("window", mcp.Description("Window size used for each prediction.")),
		mcp.WithNumber("split", mcp.Description("Train fraction for the train/test split, in (0, 1).")),
		mcp.WithBoolean("normalize", mcp.Description("Standardize with train-split statistics before forecasting.")),
	), h.handleEvaluateForecast)

	// --- 3. Tool: inspect_windows ---
	s.AddTool(mcp.NewTool("inspect_windows",
		mcp.WithDescription("Build shuffled window/label batches from a series and summarize them."),
		mcp.WithString("series_path", mcp.Description("Path to the series CSV file.")),
		mcp.WithNumber("window", mcp.Description("Window size for sliding-window pairs.")),
		mcp.WithNumber("batch", mcp.Description("Number of pairs per batch.")),
		mcp.WithNumber("seed", mcp.Description("Shuffle seed (0 = derive from current time).")),
	), h.handleInspectWindows)

	// --- 4. Tool: tune_window ---
	s.AddTool(mcp.NewTool("tune_window",
		mcp.WithDescription("Sweep candidate window sizes and stop early when one reaches the target accuracy."),
		mcp.WithString("windows", mcp.Description("Comma-separated window sizes to sweep (e.g. '7,14,30')."), mcp.Required()),
		mcp.WithString("series_path", mcp.Description("Path to the series CSV file.")),
		mcp.WithString("predictor", mcp.Description("Predictor kind (naive, sma, wma, ema, drift, trend)."), mcp.Enum("naive", "sma", "wma", "ema", "drift", "trend")),
		mcp.WithNumber("target_accuracy", mcp.Description("Accuracy threshold that halts the sweep, in [0, 100].")),
	), h.handleTuneWindow)

	return s
}

// StartMCPServer starts the Rollcast MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
