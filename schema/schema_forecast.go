package schema

// ForecastPoint is a single rolling-forecast prediction. Offset is the
// window start offset in the original series; Target is the index of the
// observation being forecast (Offset + window size).
type ForecastPoint struct {
	Offset    int     `json:"offset"`
	Target    int     `json:"target"`
	Predicted float64 `json:"predicted"`
}

// ForecastResult holds a full rolling forecast over a series.
type ForecastResult struct {
	Series     string          `json:"series"`
	Predictor  PredictorKind   `json:"predictor"`
	WindowSize int             `json:"window_size"`
	Points     []ForecastPoint `json:"points"`
}

// Predictions returns the bare prediction values in offset order.
func (r ForecastResult) Predictions() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Predicted
	}
	return out
}

// ForecastScores holds accuracy metrics for a forecast against ground truth.
type ForecastScores struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	MAPE float64 `json:"mape"`
}

// Accuracy converts MAPE into a 0-100 accuracy figure, floored at zero.
func (s ForecastScores) Accuracy() float64 {
	acc := 100.0 - s.MAPE
	if acc < 0 {
		return 0
	}
	return acc
}

// EvalResult holds the outcome of a train/test evaluation run.
type EvalResult struct {
	Series     string         `json:"series"`
	Predictor  PredictorKind  `json:"predictor"`
	WindowSize int            `json:"window_size"`
	SplitIndex int            `json:"split_index"`
	TestLength int            `json:"test_length"`
	Normalized bool           `json:"normalized"`
	Scores     ForecastScores `json:"scores"`

	// Aligned test-period predictions and ground truth, in step order.
	Predicted []float64 `json:"predicted"`
	Actual    []float64 `json:"actual"`
}

// TuneCandidate is one window size evaluated during a tuning sweep.
type TuneCandidate struct {
	WindowSize int            `json:"window_size"`
	Scores     ForecastScores `json:"scores"`
	Halted     bool           `json:"halted"` // true if this candidate triggered the stop
}

// TuneResult holds the outcome of a window-size tuning sweep.
type TuneResult struct {
	Series         string          `json:"series"`
	Predictor      PredictorKind   `json:"predictor"`
	TargetAccuracy float64         `json:"target_accuracy"`
	Candidates     []TuneCandidate `json:"candidates"`
	BestWindow     int             `json:"best_window"`
	Halted         bool            `json:"halted"`
}
