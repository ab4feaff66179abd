package cmd

import (
	"github.com/huangsam/rollcast/core"
	"github.com/huangsam/rollcast/internal/contract"
	"github.com/spf13/cobra"
)

// windowsCmd inspects the shuffled window/label batches.
var windowsCmd = &cobra.Command{
	Use:   "windows <series-file>",
	Short: "Inspect shuffled window/label batches for a series.",
	Long: `Build sliding window/label pairs from the series, shuffle them through a
bounded buffer, and show how they group into batches.

Useful for:
- Verifying how many training pairs a window size yields
- Checking batch sizes before feeding a training loop
- Reproducing an exact shuffle order from a recorded seed

The same seed always yields the same batch order, so a run can be replayed
exactly by passing the seed printed in the output.

Examples:
  # Inspect batches with defaults
  rollcast windows demand.csv

  # Small batches with a fixed seed for reproducibility
  rollcast windows demand.csv --batch 8 --seed 42

  # Larger shuffle buffer for a more uniform shuffle
  rollcast windows demand.csv --shuffle-buffer 5000`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWindows(rootCtx, cfg, seriesProvider(), runManager); err != nil {
			contract.LogFatal("Cannot inspect windows", err)
		}
	},
}
