package contract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSeriesFile writes content to a temp CSV and returns its path.
func writeSeriesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocalCSVProviderLoad_Success(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  int
		want    []float64
	}{
		{
			name:    "plain values",
			content: "1.5\n2.5\n3.5\n",
			column:  0,
			want:    []float64{1.5, 2.5, 3.5},
		},
		{
			name:    "header skipped",
			content: "temp\n10\n11\n",
			column:  0,
			want:    []float64{10, 11},
		},
		{
			name:    "second column",
			content: "date,temp\n2020-01-01,10\n2020-01-02,11\n",
			column:  1,
			want:    []float64{10, 11},
		},
		{
			name:    "boundary gaps trimmed",
			content: "NA\n\n1\n2\n3\nNaN\n",
			column:  0,
			want:    []float64{1, 2, 3},
		},
		{
			name:    "scientific notation",
			content: "1e2\n2.5e-1\n",
			column:  0,
			want:    []float64{100, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLocalCSVProvider(tt.column)
			series, err := p.Load(context.Background(), writeSeriesFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "series", series.Name)
			assert.Equal(t, tt.want, series.Values)
		})
	}
}

func TestLocalCSVProviderLoad_InteriorGap(t *testing.T) {
	p := NewLocalCSVProvider(0)
	_, err := p.Load(context.Background(), writeSeriesFile(t, "1\nNA\n3\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInteriorGap)
}

func TestLocalCSVProviderLoad_Empty(t *testing.T) {
	p := NewLocalCSVProvider(0)

	_, err := p.Load(context.Background(), writeSeriesFile(t, ""))
	assert.ErrorIs(t, err, ErrEmptySeries)

	// All-missing series trims down to nothing
	_, err = p.Load(context.Background(), writeSeriesFile(t, "NA\nNaN\nnull\n"))
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestLocalCSVProviderLoad_BadValue(t *testing.T) {
	p := NewLocalCSVProvider(0)

	// Non-numeric value past the first row is not a header
	_, err := p.Load(context.Background(), writeSeriesFile(t, "1\ntwo\n3\n"))
	assert.Error(t, err)
}

func TestLocalCSVProviderLoad_MissingColumn(t *testing.T) {
	p := NewLocalCSVProvider(3)
	_, err := p.Load(context.Background(), writeSeriesFile(t, "1,2\n3,4\n"))
	assert.Error(t, err)
}

func TestLocalCSVProviderLoad_MissingFile(t *testing.T) {
	p := NewLocalCSVProvider(0)
	_, err := p.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLocalCSVProviderLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewLocalCSVProvider(0)
	_, err := p.Load(ctx, writeSeriesFile(t, "1\n2\n"))
	assert.ErrorIs(t, err, context.Canceled)
}
