package schema

// BatchSummary describes one emitted batch of (window, label) pairs.
type BatchSummary struct {
	Index      int     `json:"index"`
	Size       int     `json:"size"`
	FirstLabel float64 `json:"first_label"`
	LastLabel  float64 `json:"last_label"`
}

// WindowsResult summarizes a windowed-dataset build for inspection.
type WindowsResult struct {
	Series        string         `json:"series"`
	WindowSize    int            `json:"window_size"`
	BatchSize     int            `json:"batch_size"`
	ShuffleBuffer int            `json:"shuffle_buffer"`
	Seed          int64          `json:"seed"`
	PairCount     int            `json:"pair_count"`
	BatchCount    int            `json:"batch_count"`
	Batches       []BatchSummary `json:"batches"`
}
