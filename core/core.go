// Package core has core logic for windowing, forecasting and evaluation.
package core

import "errors"

// Pipeline error kinds. All precondition checks run before any work
// begins; there is no partial-success mode.
var (
	// ErrInsufficientData indicates the sequence is shorter than or equal
	// to the window size, so no valid windows exist.
	ErrInsufficientData = errors.New("sequence length must exceed window size")

	// ErrInvalidSplit indicates a split index too small to align a
	// forecast against the test period.
	ErrInvalidSplit = errors.New("split index must be at least the window size")

	// ErrModelInference wraps any failure from the injected prediction
	// capability. The cause is preserved for errors.Is/As and never retried.
	ErrModelInference = errors.New("model inference failed")

	// ErrLengthMismatch indicates prediction and ground-truth slices of
	// different lengths were passed to a metric.
	ErrLengthMismatch = errors.New("prediction and actual lengths differ")
)
