package core

import (
	"context"
	"time"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/internal/outwriter"
	"github.com/huangsam/rollcast/schema"
)

// beginTracking starts a run in the tracking store, if one is configured.
// A zero run ID means tracking is disabled or failed; failures are warned
// about, never fatal, so a broken database cannot block a forecast.
func beginTracking(mgr contract.RunManager, cfg *contract.Config, action string) (contract.RunStore, int64) {
	if mgr == nil {
		return nil, 0
	}
	store := mgr.GetRunStore()
	if store == nil {
		return nil, 0
	}
	configParams := map[string]any{
		"action":    action,
		"series":    cfg.SeriesName,
		"window":    cfg.WindowSize,
		"predictor": string(cfg.Predictor),
		"split":     cfg.SplitFraction,
		"normalize": cfg.Normalize,
	}
	runID, err := store.BeginRun(time.Now(), configParams)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return nil, 0
	}
	return store, runID
}

// endTracking finalizes a tracked run.
func endTracking(store contract.RunStore, runID int64, totalPoints int) {
	if store == nil || runID == 0 {
		return
	}
	if err := store.EndRun(runID, time.Now(), totalPoints); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}

// buildForecastResult assembles per-offset points from raw predictions.
func buildForecastResult(series schema.Series, cfg *contract.Config, preds []float64) schema.ForecastResult {
	points := make([]schema.ForecastPoint, len(preds))
	for i, p := range preds {
		points[i] = schema.ForecastPoint{
			Offset:    i,
			Target:    i + cfg.WindowSize,
			Predicted: p,
		}
	}
	return schema.ForecastResult{
		Series:     series.Name,
		Predictor:  cfg.Predictor,
		WindowSize: cfg.WindowSize,
		Points:     points,
	}
}

// GetForecastResult runs a rolling forecast over the full series and
// returns the result without printing. Used by the MCP server and the
// Execute entry points.
func GetForecastResult(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) (schema.ForecastResult, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.PrintRunHeader(cfg, "forecast")
	}

	series, err := provider.Load(ctx, cfg.SeriesPath)
	if err != nil {
		return schema.ForecastResult{}, 0, err
	}
	predictor, err := NewPredictor(cfg.Predictor, cfg.EMAAlpha)
	if err != nil {
		return schema.ForecastResult{}, 0, err
	}

	store, runID := beginTracking(mgr, cfg, "forecast")

	preds, err := ForecastSequence(ctx, predictor, series.Values, cfg.WindowSize, ForecastOpts{Chunk: cfg.Chunk})
	if err != nil {
		return schema.ForecastResult{}, 0, err
	}
	result := buildForecastResult(series, cfg, preds)

	if store != nil && runID > 0 {
		if err := store.RecordPoints(runID, result); err != nil {
			contract.LogWarn("Failed to record forecast points", err)
		}
	}
	endTracking(store, runID, len(result.Points))

	return result, time.Since(start), nil
}

// ExecuteForecast runs a rolling forecast and prints results. It serves
// as the main entry point for the 'forecast' command.
func ExecuteForecast(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) error {
	result, duration, err := GetForecastResult(ctx, cfg, provider, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteForecast(result, cfg, duration)
}

// evaluateSplit forecasts the full series, aligns the forecast against the
// test period for the given window size, and scores it. Shared by the
// eval and tune paths.
func evaluateSplit(ctx context.Context, cfg *contract.Config, series schema.Series, windowSize int) (schema.EvalResult, error) {
	splitIndex := series.SplitIndex(cfg.SplitFraction)

	predictor, err := NewPredictor(cfg.Predictor, cfg.EMAAlpha)
	if err != nil {
		return schema.EvalResult{}, err
	}

	values := series.Values
	var stats SeriesStats
	if cfg.Normalize {
		stats, err = TrainStats(values, splitIndex)
		if err != nil {
			return schema.EvalResult{}, err
		}
		values = stats.Apply(values)
	}

	forecast, err := ForecastSequence(ctx, predictor, values, windowSize, ForecastOpts{Chunk: cfg.Chunk})
	if err != nil {
		return schema.EvalResult{}, err
	}
	aligned, err := AlignForecastToTestSplit(forecast, splitIndex, windowSize)
	if err != nil {
		return schema.EvalResult{}, err
	}
	if cfg.Normalize {
		aligned = stats.Invert(aligned)
	}

	actual := series.Values[splitIndex:]
	scores, err := Evaluate(actual, aligned)
	if err != nil {
		return schema.EvalResult{}, err
	}

	return schema.EvalResult{
		Series:     series.Name,
		Predictor:  cfg.Predictor,
		WindowSize: windowSize,
		SplitIndex: splitIndex,
		TestLength: len(actual),
		Normalized: cfg.Normalize,
		Scores:     scores,
		Predicted:  aligned,
		Actual:     actual,
	}, nil
}

// GetEvalResult runs a train/test evaluation and returns the result
// without printing.
func GetEvalResult(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) (schema.EvalResult, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.PrintRunHeader(cfg, "eval")
	}

	series, err := provider.Load(ctx, cfg.SeriesPath)
	if err != nil {
		return schema.EvalResult{}, 0, err
	}

	store, runID := beginTracking(mgr, cfg, "eval")

	result, err := evaluateSplit(ctx, cfg, series, cfg.WindowSize)
	if err != nil {
		return schema.EvalResult{}, 0, err
	}

	if store != nil && runID > 0 {
		if err := store.RecordScores(runID, result.Scores); err != nil {
			contract.LogWarn("Failed to record evaluation scores", err)
		}
	}
	endTracking(store, runID, result.TestLength)

	return result, time.Since(start), nil
}

// ExecuteEval runs a train/test evaluation and prints results. It serves
// as the main entry point for the 'eval' command.
func ExecuteEval(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) error {
	result, duration, err := GetEvalResult(ctx, cfg, provider, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteEval(result, cfg, duration)
}

// GetWindowsResult builds the windowed dataset and summarizes its batches
// without printing.
func GetWindowsResult(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) (schema.WindowsResult, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.PrintRunHeader(cfg, "windows")
	}

	series, err := provider.Load(ctx, cfg.SeriesPath)
	if err != nil {
		return schema.WindowsResult{}, 0, err
	}

	dataset, err := NewWindowedDataset(series.Values, cfg.WindowSize, cfg.BatchSize, cfg.ShuffleBuffer, cfg.Seed)
	if err != nil {
		return schema.WindowsResult{}, 0, err
	}

	store, runID := beginTracking(mgr, cfg, "windows")

	result := schema.WindowsResult{
		Series:        series.Name,
		WindowSize:    cfg.WindowSize,
		BatchSize:     cfg.BatchSize,
		ShuffleBuffer: cfg.ShuffleBuffer,
		Seed:          dataset.Seed(),
		PairCount:     dataset.NumPairs(),
	}
	for batch := range dataset.Batches() {
		if len(result.Batches) < cfg.ResultLimit {
			result.Batches = append(result.Batches, schema.BatchSummary{
				Index:      result.BatchCount,
				Size:       batch.Len(),
				FirstLabel: batch.Labels[0],
				LastLabel:  batch.Labels[batch.Len()-1],
			})
		}
		result.BatchCount++
	}

	endTracking(store, runID, result.PairCount)

	return result, time.Since(start), nil
}

// ExecuteWindows builds the windowed dataset and prints a batch summary.
// It serves as the main entry point for the 'windows' command.
func ExecuteWindows(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) error {
	result, duration, err := GetWindowsResult(ctx, cfg, provider, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteWindows(result, cfg, duration)
}
