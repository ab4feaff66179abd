// Package cmd defines the command-line interface for rollcast.
package cmd

import (
	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(windowsCmd)
	rootCmd.AddCommand(tuneCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("column", 0, "Zero-based value column in the series CSV")
	rootCmd.PersistentFlags().IntP("window", "w", contract.DefaultWindowSize, "Window size for sliding-window pairs and predictors")
	rootCmd.PersistentFlags().Int("batch", contract.DefaultBatchSize, "Number of window/label pairs per batch")
	rootCmd.PersistentFlags().Int("shuffle-buffer", contract.DefaultShuffleBuffer, "Size of the bounded shuffle buffer")
	rootCmd.PersistentFlags().Int64("seed", 0, "Shuffle seed (0 = derive from current time)")
	rootCmd.PersistentFlags().StringP("predictor", "p", string(schema.NaivePredictor), "Predictor: naive or sma or wma or ema or drift or trend")
	rootCmd.PersistentFlags().Float64("ema-alpha", contract.DefaultEMAAlpha, "Smoothing factor for the ema predictor, in (0, 1]")
	rootCmd.PersistentFlags().Int("chunk", contract.DefaultChunk, "Number of windows per predictor inference call")
	rootCmd.PersistentFlags().Float64("split", contract.DefaultSplitFraction, "Train fraction for the train/test split, in (0, 1)")
	rootCmd.PersistentFlags().Bool("normalize", false, "Normalize with train-split statistics before forecasting")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("run-backend", string(schema.NoneBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of tuneCmd to Viper
	tuneCmd.Flags().String("windows", "", "Comma-separated window sizes to sweep (e.g. 7,14,30)")
	tuneCmd.Flags().Float64("target-accuracy", contract.DefaultTargetAcc, "Accuracy threshold that halts the sweep, in [0, 100]")
	if err := viper.BindPFlags(tuneCmd.Flags()); err != nil {
		contract.LogFatal("Error binding tune flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
