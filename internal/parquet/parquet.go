// Package parquet provides data structures and functions for exporting
// forecast run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/rollcast/schema"
	"github.com/parquet-go/parquet-go"
)

// ForecastRun represents a single forecast run with metadata.
// This struct maps to the rollcast_forecast_runs database table.
type ForecastRun struct {
	// RunID is the unique identifier for this forecast run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalPoints is the number of forecast points produced by this run
	TotalPoints int32 `parquet:"total_points,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`

	// MAE is the mean absolute error for scored runs (nullable)
	MAE *float64 `parquet:"mae,optional,snappy"`

	// RMSE is the root mean squared error for scored runs (nullable)
	RMSE *float64 `parquet:"rmse,optional,snappy"`

	// MAPE is the mean absolute percentage error for scored runs (nullable)
	MAPE *float64 `parquet:"mape,optional,snappy"`
}

// PointForecast represents a single rolling-forecast point in a run.
// This struct maps to the rollcast_point_forecasts database table.
type PointForecast struct {
	// RunID references the parent forecast run
	RunID int64 `parquet:"run_id,snappy"`

	// SeriesName identifies the source series
	SeriesName string `parquet:"series_name,snappy"`

	// Offset is the window start offset in the source series
	Offset int32 `parquet:"offset,snappy"`

	// Target is the index of the observation being forecast
	Target int32 `parquet:"target,snappy"`

	// WindowSize is the number of observations per window
	WindowSize int32 `parquet:"window_size,snappy"`

	// Predictor identifies the predictor kind used
	Predictor string `parquet:"predictor,snappy"`

	// Predicted is the forecast value
	Predicted float64 `parquet:"predicted,snappy"`
}

// WriteForecastRunsParquet writes a slice of ForecastRun structs to a Parquet file.
func WriteForecastRunsParquet(data []ForecastRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ForecastRun struct tags
	writer := parquet.NewGenericWriter[ForecastRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WritePointForecastsParquet writes a slice of PointForecast structs to a Parquet file.
func WritePointForecastsParquet(data []PointForecast, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the PointForecast struct tags
	writer := parquet.NewGenericWriter[PointForecast](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to ForecastRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []ForecastRun {
	result := make([]ForecastRun, len(records))
	for i, record := range records {
		result[i] = ForecastRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalPoints:   int32(record.TotalPoints),
			ConfigParams:  record.ConfigParams,
			MAE:           record.MAE,
			RMSE:          record.RMSE,
			MAPE:          record.MAPE,
		}
	}
	return result
}

// ConvertPointRecords converts schema.PointRecord to PointForecast for Parquet export.
func ConvertPointRecords(records []schema.PointRecord) []PointForecast {
	result := make([]PointForecast, len(records))
	for i, record := range records {
		result[i] = PointForecast{
			RunID:      record.RunID,
			SeriesName: record.SeriesName,
			Offset:     int32(record.Offset),
			Target:     int32(record.Target),
			WindowSize: int32(record.WindowSize),
			Predictor:  record.Predictor,
			Predicted:  record.Predicted,
		}
	}
	return result
}

// ConvertForecastResult flattens a live forecast result into PointForecast
// rows for direct Parquet output, without a backing run.
func ConvertForecastResult(result schema.ForecastResult) []PointForecast {
	rows := make([]PointForecast, len(result.Points))
	for i, p := range result.Points {
		rows[i] = PointForecast{
			SeriesName: result.Series,
			Offset:     int32(p.Offset),
			Target:     int32(p.Target),
			WindowSize: int32(result.WindowSize),
			Predictor:  string(result.Predictor),
			Predicted:  p.Predicted,
		}
	}
	return rows
}
