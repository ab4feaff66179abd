package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/internal/outwriter"
	"github.com/huangsam/rollcast/schema"
)

// GetTuneResult sweeps candidate window sizes, evaluating each against the
// test split and feeding its accuracy into an early-stop monitor. The sweep
// halts as soon as a candidate meets the target accuracy.
func GetTuneResult(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) (schema.TuneResult, time.Duration, error) {
	start := time.Now()
	if len(cfg.TuneWindows) == 0 {
		return schema.TuneResult{}, 0, fmt.Errorf("no window sizes to sweep; pass --windows (e.g. 7,14,30)")
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.PrintRunHeader(cfg, "tune")
	}

	series, err := provider.Load(ctx, cfg.SeriesPath)
	if err != nil {
		return schema.TuneResult{}, 0, err
	}

	store, runID := beginTracking(mgr, cfg, "tune")

	result := schema.TuneResult{
		Series:         series.Name,
		Predictor:      cfg.Predictor,
		TargetAccuracy: cfg.TargetAccuracy,
	}
	monitor := NewEarlyStopMonitor("accuracy", cfg.TargetAccuracy)
	for _, windowSize := range cfg.TuneWindows {
		eval, err := evaluateSplit(ctx, cfg, series, windowSize)
		if err != nil {
			return schema.TuneResult{}, 0, err
		}
		halted := monitor.Observe(map[string]float64{"accuracy": eval.Scores.Accuracy()})
		result.Candidates = append(result.Candidates, schema.TuneCandidate{
			WindowSize: windowSize,
			Scores:     eval.Scores,
			Halted:     halted,
		})
		if halted {
			result.Halted = true
			break
		}
	}

	best := -1
	for i, c := range result.Candidates {
		if best < 0 || c.Scores.Accuracy() > result.Candidates[best].Scores.Accuracy() {
			best = i
		}
	}
	if best >= 0 {
		result.BestWindow = result.Candidates[best].WindowSize
		if store != nil && runID > 0 {
			if err := store.RecordScores(runID, result.Candidates[best].Scores); err != nil {
				contract.LogWarn("Failed to record tuning scores", err)
			}
		}
	}

	endTracking(store, runID, len(result.Candidates))

	return result, time.Since(start), nil
}

// ExecuteTune sweeps candidate window sizes and prints the outcome. It
// serves as the main entry point for the 'tune' command.
func ExecuteTune(ctx context.Context, cfg *contract.Config, provider contract.SeriesProvider, mgr contract.RunManager) error {
	result, duration, err := GetTuneResult(ctx, cfg, provider, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTune(result, cfg, duration)
}
