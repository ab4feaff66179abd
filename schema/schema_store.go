package schema

import "time"

// RunRecord is a row from the forecast runs table. Nullable columns are
// pointers so unfinished runs round-trip through export.
type RunRecord struct {
	RunID         int64      `json:"run_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	RunDurationMs *int64     `json:"run_duration_ms,omitempty"`
	TotalPoints   int        `json:"total_points"`
	ConfigParams  *string    `json:"config_params,omitempty"`
	MAE           *float64   `json:"mae,omitempty"`
	RMSE          *float64   `json:"rmse,omitempty"`
	MAPE          *float64   `json:"mape,omitempty"`
}

// PointRecord is a row from the point forecasts table.
type PointRecord struct {
	RunID      int64   `json:"run_id"`
	SeriesName string  `json:"series_name"`
	Offset     int     `json:"offset"`
	Target     int     `json:"target"`
	WindowSize int     `json:"window_size"`
	Predictor  string  `json:"predictor"`
	Predicted  float64 `json:"predicted"`
}

// RunStatus holds status information about the run-tracking store.
type RunStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int64            `json:"total_runs"`
	TotalPoints   int64            `json:"total_points"`
	LastRunTime   time.Time        `json:"last_run_time,omitzero"`
	OldestRunTime time.Time        `json:"oldest_run_time,omitzero"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}
