package cmd

import (
	"github.com/huangsam/rollcast/core"
	"github.com/huangsam/rollcast/internal/contract"
	"github.com/spf13/cobra"
)

// forecastCmd rolls a forecast forward from the end of the series.
var forecastCmd = &cobra.Command{
	Use:   "forecast <series-file>",
	Short: "Roll a one-step forecast across the series.",
	Long: `Slide a window over the series and predict the next value at every step.

Each prediction uses only the window of observed values that precedes it,
so the output is an honest replay of one-step-ahead forecasting:
- See how a predictor would have tracked the series historically
- Compare predictor families (naive, sma, wma, ema, drift, trend)
- Export predictions for plotting or downstream analysis

Examples:
  # Forecast with a 30-point window and the naive predictor
  rollcast forecast demand.csv

  # Weighted moving average with a tighter window
  rollcast forecast demand.csv --predictor wma --window 7

  # Exponential smoothing with a custom alpha
  rollcast forecast demand.csv --predictor ema --ema-alpha 0.5

  # Export predictions to CSV for plotting
  rollcast forecast demand.csv --output csv --output-file preds.csv

  # Track the run in a local SQLite store
  rollcast forecast demand.csv --run-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForecast(rootCtx, cfg, seriesProvider(), runManager); err != nil {
			contract.LogFatal("Cannot run forecast", err)
		}
	},
}
