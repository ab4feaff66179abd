package cmd

import (
	"github.com/huangsam/rollcast/core"
	"github.com/huangsam/rollcast/internal/contract"
	"github.com/spf13/cobra"
)

// tuneCmd sweeps window sizes with an accuracy-based early stop.
var tuneCmd = &cobra.Command{
	Use:   "tune <series-file>",
	Short: "Sweep window sizes and stop early at a target accuracy.",
	Long: `Evaluate a list of candidate window sizes in order and stop the sweep as
soon as one reaches the target accuracy.

Each candidate is scored on the same train/test split as 'eval'. The sweep:
- Halts at the first window whose accuracy meets the target
- Otherwise scores every candidate and reports the best one
- Marks the halting candidate in the output

Examples:
  # Sweep daily, weekly, and monthly windows
  rollcast tune demand.csv --windows 1,7,30

  # Stop as soon as a window reaches 95% accuracy
  rollcast tune demand.csv --windows 7,14,30 --target-accuracy 95

  # Sweep with a different predictor and split
  rollcast tune demand.csv --windows 7,14 --predictor sma --split 0.7`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTune(rootCtx, cfg, seriesProvider(), runManager); err != nil {
			contract.LogFatal("Cannot run window tuning", err)
		}
	},
}
