package core

import (
	"context"
	"testing"

	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictorArithmetic(t *testing.T) {
	window := []float64{1, 2, 3, 4}

	tests := []struct {
		name  string
		kind  schema.PredictorKind
		alpha float64
		want  float64
	}{
		{"naive repeats last", schema.NaivePredictor, 0, 4},
		{"sma means window", schema.SMAPredictor, 0, 2.5},
		{"wma weights newest", schema.WMAPredictor, 0, 3.0},
		{"drift extends slope", schema.DriftPredictor, 0, 5.0},
		{"trend extrapolates line", schema.TrendPredictor, 0, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPredictor(tt.kind, tt.alpha)
			require.NoError(t, err)

			out, err := p.Predict(context.Background(), [][]float64{window})
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.InDelta(t, tt.want, out[0], 1e-9)
		})
	}
}

func TestEMAPredictor(t *testing.T) {
	p, err := NewPredictor(schema.EMAPredictor, 0.5)
	require.NoError(t, err)

	// ema = 1 -> 0.5*2+0.5*1 = 1.5 -> 0.5*3+0.5*1.5 = 2.25 -> 0.5*4+0.5*2.25 = 3.125
	out, err := p.Predict(context.Background(), [][]float64{{1, 2, 3, 4}})
	require.NoError(t, err)
	assert.InDelta(t, 3.125, out[0], 1e-9)
}

func TestEMAPredictorBadAlpha(t *testing.T) {
	_, err := NewPredictor(schema.EMAPredictor, 0)
	assert.Error(t, err)
	_, err = NewPredictor(schema.EMAPredictor, 1.5)
	assert.Error(t, err)
}

func TestPredictorSingleValueWindow(t *testing.T) {
	for _, kind := range schema.AllPredictorKinds {
		t.Run(string(kind), func(t *testing.T) {
			p, err := NewPredictor(kind, 0.3)
			require.NoError(t, err)

			out, err := p.Predict(context.Background(), [][]float64{{7}})
			require.NoError(t, err)
			assert.Equal(t, []float64{7}, out)
		})
	}
}

func TestPredictorEmptyWindow(t *testing.T) {
	p, err := NewPredictor(schema.SMAPredictor, 0)
	require.NoError(t, err)

	_, err = p.Predict(context.Background(), [][]float64{{1, 2}, {}})
	assert.ErrorIs(t, err, ErrEmptyWindow)
}

func TestPredictorBatchOrder(t *testing.T) {
	p, err := NewPredictor(schema.NaivePredictor, 0)
	require.NoError(t, err)

	out, err := p.Predict(context.Background(), [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, out)
}

func TestNewPredictorUnknownKind(t *testing.T) {
	_, err := NewPredictor(schema.PredictorKind("arima"), 0)
	assert.Error(t, err)
}
