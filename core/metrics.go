package core

import (
	"fmt"
	"math"

	"github.com/huangsam/rollcast/schema"
)

// checkLengths validates metric inputs once for all metric functions.
func checkLengths(actual, predicted []float64) error {
	if len(actual) != len(predicted) {
		return fmt.Errorf("%w: %d actual, %d predicted", ErrLengthMismatch, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return fmt.Errorf("%w: no observations to score", ErrLengthMismatch)
	}
	return nil
}

// MeanAbsoluteError returns the mean of |actual - predicted|.
func MeanAbsoluteError(actual, predicted []float64) (float64, error) {
	if err := checkLengths(actual, predicted); err != nil {
		return 0, err
	}
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual)), nil
}

// RootMeanSquaredError returns the square root of the mean squared error.
func RootMeanSquaredError(actual, predicted []float64) (float64, error) {
	if err := checkLengths(actual, predicted); err != nil {
		return 0, err
	}
	var sum float64
	for i := range actual {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(actual))), nil
}

// MeanAbsolutePercentageError returns the mean of |error/actual| in
// percent. Zero-valued actuals are skipped; an all-zero ground truth
// yields zero.
func MeanAbsolutePercentageError(actual, predicted []float64) (float64, error) {
	if err := checkLengths(actual, predicted); err != nil {
		return 0, err
	}
	var sum float64
	counted := 0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
		counted++
	}
	if counted == 0 {
		return 0, nil
	}
	return 100 * sum / float64(counted), nil
}

// Evaluate computes the full score set for a forecast against ground truth.
func Evaluate(actual, predicted []float64) (schema.ForecastScores, error) {
	mae, err := MeanAbsoluteError(actual, predicted)
	if err != nil {
		return schema.ForecastScores{}, err
	}
	rmse, err := RootMeanSquaredError(actual, predicted)
	if err != nil {
		return schema.ForecastScores{}, err
	}
	mape, err := MeanAbsolutePercentageError(actual, predicted)
	if err != nil {
		return schema.ForecastScores{}, err
	}
	return schema.ForecastScores{MAE: mae, RMSE: rmse, MAPE: mape}, nil
}
