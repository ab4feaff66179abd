package core

import (
	"context"
	"fmt"

	"github.com/huangsam/rollcast/internal/contract"
)

// DefaultForecastChunk is the number of windows sent per Predict call when
// the caller does not choose a chunk size.
const DefaultForecastChunk = 256

// ForecastOpts controls rolling-forecast execution.
type ForecastOpts struct {
	// Chunk is the number of windows per Predict call; <= 0 selects
	// DefaultForecastChunk.
	Chunk int
}

// ForecastSequence produces a rolling single-step forecast: one prediction
// per valid window start offset, in offset order. The prediction at index
// k forecasts the observation at original index k + windowSize. Predictor
// failures are wrapped as ErrModelInference with the cause preserved and
// are never retried here.
func ForecastSequence(ctx context.Context, p contract.Predictor, values []float64, windowSize int, opts ForecastOpts) ([]float64, error) {
	windows, err := SlideWindows(values, windowSize)
	if err != nil {
		return nil, err
	}

	chunk := opts.Chunk
	if chunk <= 0 {
		chunk = DefaultForecastChunk
	}

	preds := make([]float64, 0, len(windows))
	for start := 0; start < len(windows); start += chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+chunk, len(windows))
		out, err := p.Predict(ctx, windows[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: windows %d..%d: %w", ErrModelInference, start, end-1, err)
		}
		if len(out) != end-start {
			return nil, fmt.Errorf("%w: predictor returned %d predictions for %d windows", ErrModelInference, len(out), end-start)
		}
		preds = append(preds, out...)
	}
	return preds, nil
}

// AlignForecastToTestSplit selects the slice of a full-sequence forecast
// covering original offsets splitIndex onward. The forecast buffer's index
// zero corresponds to original offset windowSize, so the aligned slice
// starts at splitIndex - windowSize.
func AlignForecastToTestSplit(forecast []float64, splitIndex, windowSize int) ([]float64, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("window size must be >= 1, got %d", windowSize)
	}
	if splitIndex < windowSize {
		return nil, fmt.Errorf("%w: split index %d, window size %d", ErrInvalidSplit, splitIndex, windowSize)
	}
	offset := splitIndex - windowSize
	if offset > len(forecast) {
		return nil, fmt.Errorf("%w: split index %d is beyond the forecast range", ErrInvalidSplit, splitIndex)
	}
	return forecast[offset:], nil
}
