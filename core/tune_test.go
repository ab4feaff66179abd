package core

import (
	"context"
	"testing"

	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTuneResultHalts(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	// On a strictly increasing series an SMA forecast lags harder with
	// larger windows, so accuracy improves along this sweep order.
	cfg.Predictor = schema.SMAPredictor
	cfg.TuneWindows = []int{8, 4, 2}
	cfg.TargetAccuracy = 90
	provider := stubProvider(sequence(20))

	result, _, err := GetTuneResult(ctx, cfg, provider, nil)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 3)
	assert.True(t, result.Halted)
	assert.False(t, result.Candidates[0].Halted)
	assert.False(t, result.Candidates[1].Halted)
	assert.True(t, result.Candidates[2].Halted)
	assert.Equal(t, 2, result.BestWindow)
	assert.GreaterOrEqual(t, result.Candidates[2].Scores.Accuracy(), 90.0)
}

func TestGetTuneResultNoHalt(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	cfg.Predictor = schema.SMAPredictor
	cfg.TuneWindows = []int{8, 4, 2}
	cfg.TargetAccuracy = 99.9
	provider := stubProvider(sequence(20))

	result, _, err := GetTuneResult(ctx, cfg, provider, nil)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 3)
	assert.False(t, result.Halted)
	// Every candidate was evaluated; the smallest window lags least.
	assert.Equal(t, 2, result.BestWindow)
}

func TestGetTuneResultHaltsEarly(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	cfg.Predictor = schema.SMAPredictor
	cfg.TuneWindows = []int{2, 4, 8}
	cfg.TargetAccuracy = 90
	provider := stubProvider(sequence(20))

	result, _, err := GetTuneResult(ctx, cfg, provider, nil)
	require.NoError(t, err)
	// The first candidate already meets the target, so the rest of the
	// sweep is skipped.
	require.Len(t, result.Candidates, 1)
	assert.True(t, result.Halted)
	assert.Equal(t, 2, result.BestWindow)
}

func TestGetTuneResultPropagatesErrors(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	cfg.TuneWindows = []int{25}
	provider := stubProvider(sequence(20))

	_, _, err := GetTuneResult(ctx, cfg, provider, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestGetTuneResultRequiresWindows(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	cfg := testConfig()
	cfg.TuneWindows = nil
	provider := stubProvider(sequence(20))

	_, _, err := GetTuneResult(ctx, cfg, provider, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no window sizes to sweep")
}
