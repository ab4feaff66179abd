// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/rollcast/schema"
)

// Predictor is the model-inference capability injected into the forecast
// pipeline. Given a batch of windows of equal length it returns one
// prediction per window, in the same order. Implementations must not
// retain the window slices.
type Predictor interface {
	Predict(ctx context.Context, windows [][]float64) ([]float64, error)
}

// SeriesProvider loads a univariate series from an external source.
// Implementations handle gap discipline at the edge: boundary gaps are
// trimmed, interior gaps are an error.
type SeriesProvider interface {
	Load(ctx context.Context, path string) (schema.Series, error)
}

// RunManager defines the interface for accessing the run-tracking store.
// This allows the persistence layer to be mocked for testing.
type RunManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking forecast runs and storing
// per-point predictions and evaluation scores.
type RunStore interface {
	// BeginRun creates a new forecast run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalPoints int) error

	// RecordPoints stores the per-offset predictions for a run
	RecordPoints(runID int64, result schema.ForecastResult) error

	// RecordScores stores evaluation scores for a run
	RecordScores(runID int64, scores schema.ForecastScores) error

	// GetAllRuns returns every recorded run, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllPoints returns every recorded point forecast, oldest run first
	GetAllPoints() ([]schema.PointRecord, error)

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection
	Close() error
}
