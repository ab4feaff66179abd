package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/schema"
)

// ErrEmptyWindow indicates a predictor received a zero-length window.
var ErrEmptyWindow = errors.New("cannot predict from an empty window")

// NewPredictor returns the baseline predictor for the given kind. The
// alpha parameter only affects the EMA predictor.
func NewPredictor(kind schema.PredictorKind, alpha float64) (contract.Predictor, error) {
	switch kind {
	case schema.NaivePredictor:
		return naivePredictor{}, nil
	case schema.SMAPredictor:
		return smaPredictor{}, nil
	case schema.WMAPredictor:
		return wmaPredictor{}, nil
	case schema.EMAPredictor:
		if alpha <= 0 || alpha > 1 {
			return nil, fmt.Errorf("ema alpha must be in (0, 1], got %g", alpha)
		}
		return emaPredictor{alpha: alpha}, nil
	case schema.DriftPredictor:
		return driftPredictor{}, nil
	case schema.TrendPredictor:
		return trendPredictor{}, nil
	default:
		return nil, fmt.Errorf("unsupported predictor kind: %s", kind)
	}
}

// predictEach applies a per-window prediction function across a batch,
// sharing the empty-window check.
func predictEach(windows [][]float64, fn func([]float64) float64) ([]float64, error) {
	out := make([]float64, len(windows))
	for i, w := range windows {
		if len(w) == 0 {
			return nil, fmt.Errorf("%w: batch index %d", ErrEmptyWindow, i)
		}
		out[i] = fn(w)
	}
	return out, nil
}

// naivePredictor forecasts the last observed value.
type naivePredictor struct{}

func (naivePredictor) Predict(_ context.Context, windows [][]float64) ([]float64, error) {
	return predictEach(windows, func(w []float64) float64 {
		return w[len(w)-1]
	})
}

// smaPredictor forecasts the window mean.
type smaPredictor struct{}

func (smaPredictor) Predict(_ context.Context, windows [][]float64) ([]float64, error) {
	return predictEach(windows, func(w []float64) float64 {
		var sum float64
		for _, v := range w {
			sum += v
		}
		return sum / float64(len(w))
	})
}

// wmaPredictor forecasts a linearly weighted mean, newest values heaviest.
type wmaPredictor struct{}

func (wmaPredictor) Predict(_ context.Context, windows [][]float64) ([]float64, error) {
	return predictEach(windows, func(w []float64) float64 {
		var sum, weight float64
		for i, v := range w {
			sum += v * float64(i+1)
			weight += float64(i + 1)
		}
		return sum / weight
	})
}

// emaPredictor forecasts an exponential moving average over the window.
type emaPredictor struct {
	alpha float64
}

func (p emaPredictor) Predict(_ context.Context, windows [][]float64) ([]float64, error) {
	return predictEach(windows, func(w []float64) float64 {
		ema := w[0]
		for _, v := range w[1:] {
			ema = p.alpha*v + (1-p.alpha)*ema
		}
		return ema
	})
}

// driftPredictor extends the average step between the window's first and
// last values one step past the end.
type driftPredictor struct{}

func (driftPredictor) Predict(_ context.Context, windows [][]float64) ([]float64, error) {
	return predictEach(windows, func(w []float64) float64 {
		last := w[len(w)-1]
		if len(w) == 1 {
			return last
		}
		return last + (last-w[0])/float64(len(w)-1)
	})
}

// trendPredictor fits an ordinary least squares line over the window and
// extrapolates one step.
type trendPredictor struct{}

func (trendPredictor) Predict(_ context.Context, windows [][]float64) ([]float64, error) {
	return predictEach(windows, func(w []float64) float64 {
		n := float64(len(w))
		if len(w) == 1 {
			return w[0]
		}

		// x values are 0..n-1, so their mean is (n-1)/2
		xMean := (n - 1) / 2
		var yMean float64
		for _, v := range w {
			yMean += v
		}
		yMean /= n

		var num, den float64
		for i, v := range w {
			dx := float64(i) - xMean
			num += dx * (v - yMean)
			den += dx * dx
		}
		slope := num / den
		intercept := yMean - slope*xMean
		return intercept + slope*n
	})
}
