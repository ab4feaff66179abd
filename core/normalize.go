package core

import (
	"fmt"
	"math"
)

// SeriesStats holds normalization statistics computed over a training
// prefix. Std is a true standard deviation, the square root of the mean
// squared deviation.
type SeriesStats struct {
	Mean float64
	Std  float64
}

// TrainStats computes normalization statistics over values[:splitIndex]
// only, so nothing from the test period leaks into scaling. A constant
// training prefix yields Std of 1, which normalizes it to all zeros.
func TrainStats(values []float64, splitIndex int) (SeriesStats, error) {
	if splitIndex < 1 || splitIndex > len(values) {
		return SeriesStats{}, fmt.Errorf("split index %d outside series of length %d", splitIndex, len(values))
	}
	train := values[:splitIndex]

	var sum float64
	for _, v := range train {
		sum += v
	}
	mean := sum / float64(len(train))

	var sqSum float64
	for _, v := range train {
		d := v - mean
		sqSum += d * d
	}
	std := math.Sqrt(sqSum / float64(len(train)))
	if std == 0 {
		std = 1
	}

	return SeriesStats{Mean: mean, Std: std}, nil
}

// Apply returns a normalized copy of values: (v - Mean) / Std.
func (s SeriesStats) Apply(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - s.Mean) / s.Std
	}
	return out
}

// Invert returns a denormalized copy of values: v*Std + Mean.
func (s SeriesStats) Invert(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v*s.Std + s.Mean
	}
	return out
}
