package schema

// Series is an ordered univariate sequence of observations, one per time
// step. Providers guarantee there are no interior gaps; boundary gaps are
// trimmed at load time.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Len returns the number of observations in the series.
func (s Series) Len() int { return len(s.Values) }

// SplitIndex converts a split fraction into an index into the series.
// A fraction of 0.8 over 100 observations yields 80: observations
// [0,80) train, [80,100) test.
func (s Series) SplitIndex(fraction float64) int {
	return int(fraction * float64(s.Len()))
}
