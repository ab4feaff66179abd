package runstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/rollcast/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total forecast runs: %d\n", status.TotalRuns)
	fmt.Printf("Total forecast points: %d\n", status.TotalPoints)

	// Retrieve all forecast runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve forecast runs: %w", err)
	}

	// Retrieve all forecast points
	points, err := store.GetAllPoints()
	if err != nil {
		return fmt.Errorf("failed to retrieve forecast points: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetPoints := parquet.ConvertPointRecords(points)

	// Write forecast runs to Parquet
	runsFile := outputFile + ".forecast_runs.parquet"
	if err := parquet.WriteForecastRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write forecast runs: %w", err)
	}
	fmt.Printf("Exported %d forecast runs to: %s\n", len(parquetRuns), runsFile)

	// Write forecast points to Parquet
	pointsFile := outputFile + ".point_forecasts.parquet"
	if err := parquet.WritePointForecastsParquet(parquetPoints, pointsFile); err != nil {
		return fmt.Errorf("failed to write forecast points: %w", err)
	}
	fmt.Printf("Exported %d forecast points to: %s\n", len(parquetPoints), pointsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
