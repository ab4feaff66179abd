package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsPerfectForecast(t *testing.T) {
	actual := []float64{1, 2, 3, 4}

	scores, err := Evaluate(actual, actual)
	require.NoError(t, err)
	assert.Zero(t, scores.MAE)
	assert.Zero(t, scores.RMSE)
	assert.Zero(t, scores.MAPE)
	assert.Equal(t, 100.0, scores.Accuracy())
}

func TestMetricsHandComputed(t *testing.T) {
	actual := []float64{10, 20, 30}
	predicted := []float64{12, 18, 33}

	mae, err := MeanAbsoluteError(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/3.0, mae, 1e-9)

	rmse, err := RootMeanSquaredError(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 2.3804761, rmse, 1e-6)

	mape, err := MeanAbsolutePercentageError(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 100.0*(0.2+0.1+0.1)/3.0, mape, 1e-9)
}

func TestMAPESkipsZeroActuals(t *testing.T) {
	mape, err := MeanAbsolutePercentageError([]float64{0, 10, 0}, []float64{5, 11, 2})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, mape, 1e-9)
}

func TestMAPEAllZeroActuals(t *testing.T) {
	mape, err := MeanAbsolutePercentageError([]float64{0, 0}, []float64{1, 2})
	require.NoError(t, err)
	assert.Zero(t, mape)
}

func TestMetricsLengthMismatch(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
	}{
		{"different lengths", []float64{1, 2}, []float64{1}},
		{"both empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MeanAbsoluteError(tt.actual, tt.predicted)
			assert.ErrorIs(t, err, ErrLengthMismatch)
			_, err = RootMeanSquaredError(tt.actual, tt.predicted)
			assert.ErrorIs(t, err, ErrLengthMismatch)
			_, err = MeanAbsolutePercentageError(tt.actual, tt.predicted)
			assert.ErrorIs(t, err, ErrLengthMismatch)
			_, err = Evaluate(tt.actual, tt.predicted)
			assert.ErrorIs(t, err, ErrLengthMismatch)
		})
	}
}
