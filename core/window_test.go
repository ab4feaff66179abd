package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func collectPairs(t *testing.T, d *WindowedDataset) ([][]float64, []float64) {
	t.Helper()
	var windows [][]float64
	var labels []float64
	for batch := range d.Batches() {
		require.Equal(t, len(batch.Windows), len(batch.Labels))
		windows = append(windows, batch.Windows...)
		labels = append(labels, batch.Labels...)
	}
	return windows, labels
}

func TestNewWindowedDatasetValidation(t *testing.T) {
	tests := []struct {
		name          string
		values        []float64
		windowSize    int
		batchSize     int
		shuffleBuffer int
		wantErr       error
	}{
		{"window equals length", sequence(5), 5, 2, 10, ErrInsufficientData},
		{"window exceeds length", sequence(3), 7, 2, 10, ErrInsufficientData},
		{"empty sequence", nil, 1, 1, 1, ErrInsufficientData},
		{"valid minimal", sequence(2), 1, 1, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewWindowedDataset(tt.values, tt.windowSize, tt.batchSize, tt.shuffleBuffer, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, d)
			}
		})
	}
}

func TestNewWindowedDatasetBadParams(t *testing.T) {
	_, err := NewWindowedDataset(sequence(10), 0, 2, 10, 1)
	assert.Error(t, err)
	_, err = NewWindowedDataset(sequence(10), 3, 0, 10, 1)
	assert.Error(t, err)
	_, err = NewWindowedDataset(sequence(10), 3, 2, 0, 1)
	assert.Error(t, err)
}

func TestWindowedDatasetPairCount(t *testing.T) {
	d, err := NewWindowedDataset(sequence(10), 3, 2, 4, 42)
	require.NoError(t, err)
	assert.Equal(t, 7, d.NumPairs())

	windows, labels := collectPairs(t, d)
	assert.Len(t, windows, 7)
	assert.Len(t, labels, 7)
}

func TestWindowedDatasetLabelsFollowWindows(t *testing.T) {
	d, err := NewWindowedDataset(sequence(10), 3, 2, 5, 7)
	require.NoError(t, err)

	windows, labels := collectPairs(t, d)
	for i, w := range windows {
		require.Len(t, w, 3)
		// Consecutive integers make the expected label the window end + 1.
		assert.Equal(t, w[2]+1, labels[i])
	}
}

func TestWindowedDatasetCoversEveryPairOnce(t *testing.T) {
	d, err := NewWindowedDataset(sequence(10), 3, 4, 3, 99)
	require.NoError(t, err)

	_, labels := collectPairs(t, d)
	sort.Float64s(labels)
	assert.Equal(t, []float64{4, 5, 6, 7, 8, 9, 10}, labels)
}

func TestWindowedDatasetBatchSizes(t *testing.T) {
	d, err := NewWindowedDataset(sequence(10), 3, 2, 4, 5)
	require.NoError(t, err)

	var sizes []int
	for batch := range d.Batches() {
		sizes = append(sizes, batch.Len())
	}
	// 7 pairs at batch size 2 gives three full batches plus a partial one.
	assert.Equal(t, []int{2, 2, 2, 1}, sizes)
}

func TestWindowedDatasetRestartable(t *testing.T) {
	d, err := NewWindowedDataset(sequence(50), 5, 8, 16, 1234)
	require.NoError(t, err)

	_, first := collectPairs(t, d)
	_, second := collectPairs(t, d)
	assert.Equal(t, first, second)
}

func TestWindowedDatasetSeedChangesOrder(t *testing.T) {
	a, err := NewWindowedDataset(sequence(100), 5, 8, 32, 1)
	require.NoError(t, err)
	b, err := NewWindowedDataset(sequence(100), 5, 8, 32, 2)
	require.NoError(t, err)

	_, la := collectPairs(t, a)
	_, lb := collectPairs(t, b)
	require.Len(t, lb, len(la))
	assert.NotEqual(t, la, lb)
}

func TestWindowedDatasetZeroSeedIsCaptured(t *testing.T) {
	d, err := NewWindowedDataset(sequence(20), 3, 4, 8, 0)
	require.NoError(t, err)
	assert.NotZero(t, d.Seed())

	_, first := collectPairs(t, d)
	_, second := collectPairs(t, d)
	assert.Equal(t, first, second)
}

func TestSlideWindows(t *testing.T) {
	windows, err := SlideWindows(sequence(6), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, windows)

	_, err = SlideWindows(sequence(3), 3)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = SlideWindows(sequence(3), 0)
	assert.Error(t, err)
}
