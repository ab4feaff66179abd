package outwriter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvalResult() schema.EvalResult {
	return schema.EvalResult{
		Series:     "demand",
		Predictor:  schema.SMAPredictor,
		WindowSize: 4,
		SplitIndex: 16,
		TestLength: 4,
		Scores:     schema.ForecastScores{MAE: 1.5, RMSE: 1.8, MAPE: 8.1},
		Predicted:  []float64{15.5, 16.5, 17.5, 18.5},
		Actual:     []float64{17, 18, 19, 20},
	}
}

func TestPrintEvalResultsText(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "eval.txt")
	cfg := outputTestConfig(schema.TextOut, outputPath)

	err := PrintEvalResults(sampleEvalResult(), cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, "MAPE")
	assert.Contains(t, out, "8.10")
	assert.Contains(t, out, "Scored 4 test points for demand")
}

func TestPrintEvalResultsColorFlag(t *testing.T) {
	// fatih/color disables itself off-TTY; force it on so the flag's
	// effect is observable in the written file.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	colorPath := filepath.Join(t.TempDir(), "eval_color.txt")
	cfg := outputTestConfig(schema.TextOut, colorPath)
	cfg.UseColors = true
	require.NoError(t, PrintEvalResults(sampleEvalResult(), cfg, time.Millisecond))
	colored, err := os.ReadFile(colorPath)
	require.NoError(t, err)
	assert.Contains(t, string(colored), "\x1b[")

	plainPath := filepath.Join(t.TempDir(), "eval_plain.txt")
	cfg = outputTestConfig(schema.TextOut, plainPath)
	cfg.UseColors = false
	require.NoError(t, PrintEvalResults(sampleEvalResult(), cfg, time.Millisecond))
	plain, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "\x1b[")
	assert.Contains(t, string(plain), "Good")
}

func TestPrintEvalResultsCSV(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "eval.csv")
	cfg := outputTestConfig(schema.CSVOut, outputPath)

	err := PrintEvalResults(sampleEvalResult(), cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "series,predictor,window,split_index,test_length,mae,rmse,mape,accuracy,label", lines[0])
	assert.Contains(t, lines[1], "demand,sma,4,16,4,1.50,1.80,8.10,91.90,Good")
}

func TestPrintEvalResultsJSON(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "eval.json")
	cfg := outputTestConfig(schema.JSONOut, outputPath)

	err := PrintEvalResults(sampleEvalResult(), cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"mape": 8.1`)
}

func TestPrintTuneResultsText(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "tune.txt")
	cfg := outputTestConfig(schema.TextOut, outputPath)

	result := schema.TuneResult{
		Series:         "demand",
		Predictor:      schema.SMAPredictor,
		TargetAccuracy: 90,
		Candidates: []schema.TuneCandidate{
			{WindowSize: 8, Scores: schema.ForecastScores{MAPE: 24.4}},
			{WindowSize: 2, Scores: schema.ForecastScores{MAPE: 8.1}, Halted: true},
		},
		BestWindow: 2,
		Halted:     true,
	}

	err := PrintTuneResults(result, cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, "2 *")
	assert.Contains(t, out, "Best window 2 for demand")
	assert.Contains(t, out, "halted at target accuracy 90.0%")
}

func TestPrintWindowsResultsText(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "windows.txt")
	cfg := outputTestConfig(schema.TextOut, outputPath)

	result := schema.WindowsResult{
		Series:        "demand",
		WindowSize:    3,
		BatchSize:     4,
		ShuffleBuffer: 8,
		Seed:          42,
		PairCount:     7,
		BatchCount:    2,
		Batches: []schema.BatchSummary{
			{Index: 0, Size: 4, FirstLabel: 5, LastLabel: 9},
			{Index: 1, Size: 3, FirstLabel: 4, LastLabel: 10},
		},
	}

	err := PrintWindowsResults(result, cfg, time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, "First Label")
	assert.Contains(t, out, "Showing 2 of 2 batches for demand (7 pairs, window 3, batch 4, buffer 8, seed 42)")
}
