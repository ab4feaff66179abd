// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"time"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteForecast prints rolling-forecast results using the configured output format.
func (ow *OutWriter) WriteForecast(result schema.ForecastResult, cfg *contract.Config, duration time.Duration) error {
	return PrintForecastResults(result, cfg, duration)
}

// WriteEval prints evaluation results using the configured output format.
func (ow *OutWriter) WriteEval(result schema.EvalResult, cfg *contract.Config, duration time.Duration) error {
	return PrintEvalResults(result, cfg, duration)
}

// WriteWindows prints windowed-dataset summaries using the configured output format.
func (ow *OutWriter) WriteWindows(result schema.WindowsResult, cfg *contract.Config, duration time.Duration) error {
	return PrintWindowsResults(result, cfg, duration)
}

// WriteTune prints window tuning results using the configured output format.
func (ow *OutWriter) WriteTune(result schema.TuneResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTuneResults(result, cfg, duration)
}

// PrintRunHeader prints a concise, 2-line header for each pipeline run.
func PrintRunHeader(cfg *contract.Config, action string) {
	seriesName := cfg.SeriesName
	if seriesName == "" {
		seriesName = "unnamed"
	}

	// Line 1: The run summary (Series and Predictor)
	fmt.Printf("🔎 Series: %s (Predictor: %s)\n", seriesName, cfg.Predictor)

	// Line 2: The pipeline geometry for this action
	switch action {
	case "tune":
		fmt.Printf("🎯 Windows: %v (Target accuracy: %.1f%%)\n", cfg.TuneWindows, cfg.TargetAccuracy)
	case "eval":
		fmt.Printf("📐 Window: %d (Split: %.0f%% train)\n", cfg.WindowSize, cfg.SplitFraction*100)
	default:
		fmt.Printf("📐 Window: %d (Batch: %d, Buffer: %d)\n", cfg.WindowSize, cfg.BatchSize, cfg.ShuffleBuffer)
	}
}
