package contract

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/rollcast/schema"
)

// Provider-level error kinds.
var (
	// ErrInteriorGap indicates a missing value inside the series body.
	// Boundary gaps are trimmed silently; interior gaps cannot be.
	ErrInteriorGap = errors.New("series contains an interior gap")

	// ErrEmptySeries indicates the source contained no usable observations.
	ErrEmptySeries = errors.New("series contains no observations")
)

// LocalCSVProvider loads a series from a local CSV file. One value is read
// per row from the configured column; a non-numeric first row is treated
// as a header and skipped.
type LocalCSVProvider struct {
	Column int
}

var _ SeriesProvider = &LocalCSVProvider{} // Compile-time check

// NewLocalCSVProvider creates a provider reading the given zero-based column.
func NewLocalCSVProvider(column int) *LocalCSVProvider {
	return &LocalCSVProvider{Column: column}
}

// Load reads the series at path. Leading and trailing missing entries
// (empty, NA, NaN, null) are trimmed; a missing entry between two present
// ones fails with ErrInteriorGap.
func (p *LocalCSVProvider) Load(ctx context.Context, path string) (schema.Series, error) {
	if err := ctx.Err(); err != nil {
		return schema.Series{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return schema.Series{}, fmt.Errorf("cannot open series file: %w", err)
	}
	defer func() { _ = file.Close() }()

	values, err := p.parseValues(file)
	if err != nil {
		return schema.Series{}, fmt.Errorf("cannot parse series file %q: %w", path, err)
	}

	values, err = trimBoundaryGaps(values)
	if err != nil {
		return schema.Series{}, fmt.Errorf("series file %q: %w", path, err)
	}
	if len(values) == 0 {
		return schema.Series{}, fmt.Errorf("series file %q: %w", path, ErrEmptySeries)
	}

	return schema.Series{
		Name:   schema.SeriesNameFromPath(path),
		Values: values,
	}, nil
}

// parseValues reads raw observations from the reader. Missing entries are
// represented as NaN so the gap discipline can be enforced afterwards.
func (p *LocalCSVProvider) parseValues(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may have trailing columns we ignore
	reader.TrimLeadingSpace = true

	var values []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		if p.Column >= len(record) {
			return nil, fmt.Errorf("row %d has %d columns, need column %d", row, len(record), p.Column)
		}

		field := strings.TrimSpace(record[p.Column])
		if isMissingField(field) {
			values = append(values, math.NaN())
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			// A non-numeric first row is a header
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: invalid value %q: %w", row, field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// isMissingField reports whether a CSV field marks a missing observation.
func isMissingField(field string) bool {
	switch strings.ToLower(field) {
	case "", "na", "n/a", "nan", "null":
		return true
	default:
		return false
	}
}

// trimBoundaryGaps removes leading and trailing NaN entries and rejects
// any NaN remaining in the interior.
func trimBoundaryGaps(values []float64) ([]float64, error) {
	start := 0
	for start < len(values) && math.IsNaN(values[start]) {
		start++
	}
	end := len(values)
	for end > start && math.IsNaN(values[end-1]) {
		end--
	}
	trimmed := values[start:end]
	for i, v := range trimmed {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w at offset %d", ErrInteriorGap, start+i)
		}
	}
	return trimmed, nil
}
