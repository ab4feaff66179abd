// Package schema defines the shared data types for rollcast.
package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// PredictorKind represents a baseline predictor selection.
	PredictorKind string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string

	// MonitorState represents the state of the early-stop monitor.
	MonitorState string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All predictor kinds supported.
const (
	NaivePredictor PredictorKind = "naive" // default
	SMAPredictor   PredictorKind = "sma"
	WMAPredictor   PredictorKind = "wma"
	EMAPredictor   PredictorKind = "ema"
	DriftPredictor PredictorKind = "drift"
	TrendPredictor PredictorKind = "trend"
)

// All run-tracking backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Early-stop monitor states. Stopped is terminal for a run.
const (
	Monitoring MonitorState = "monitoring"
	Stopped    MonitorState = "stopped"
)

// AllPredictorKinds returns a list of all supported predictor kinds.
var AllPredictorKinds = []PredictorKind{
	NaivePredictor, SMAPredictor, WMAPredictor, EMAPredictor, DriftPredictor, TrendPredictor,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidPredictorKinds lists all valid predictor kinds.
var ValidPredictorKinds = map[PredictorKind]struct{}{
	NaivePredictor: {},
	SMAPredictor:   {},
	WMAPredictor:   {},
	EMAPredictor:   {},
	DriftPredictor: {},
	TrendPredictor: {},
}

// ValidDatabaseBackends lists all valid run-tracking backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
