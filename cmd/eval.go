package cmd

import (
	"github.com/huangsam/rollcast/core"
	"github.com/huangsam/rollcast/internal/contract"
	"github.com/spf13/cobra"
)

// evalCmd scores a predictor against a held-out test split.
var evalCmd = &cobra.Command{
	Use:   "eval <series-file>",
	Short: "Score a predictor against a held-out test split.",
	Long: `Split the series into train and test segments and score one-step
forecasts over the test segment.

Reports MAE, RMSE, MAPE, and an accuracy score derived from MAPE, helping you:
- Quantify how well a predictor generalizes beyond the data it has seen
- Compare window sizes and predictor families on equal footing
- Decide whether normalization helps a given series

With --normalize, values are standardized using statistics computed from the
train segment only, and predictions are mapped back to the original scale
before scoring.

Examples:
  # Score the naive predictor on the last 20% of the series
  rollcast eval demand.csv

  # Use a 70/30 split with a weekly window
  rollcast eval demand.csv --split 0.7 --window 7

  # Standardize before forecasting
  rollcast eval demand.csv --predictor ema --normalize

  # Export the scores as JSON
  rollcast eval demand.csv --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEval(rootCtx, cfg, seriesProvider(), runManager); err != nil {
			contract.LogFatal("Cannot run evaluation", err)
		}
	},
}
