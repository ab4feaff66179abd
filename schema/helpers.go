package schema

import (
	"path/filepath"
	"strings"
)

// SeriesNameFromPath derives a display name for a series from its file
// path: "data/daily-temps.csv" becomes "daily-temps".
func SeriesNameFromPath(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" || name == "." {
		return base
	}
	return name
}

// TrendDirection summarizes the drift of a forecast as "rising",
// "falling", or "flat" by comparing the first and last predictions.
func TrendDirection(points []ForecastPoint) string {
	if len(points) < 2 {
		return "flat"
	}
	first := points[0].Predicted
	last := points[len(points)-1].Predicted
	switch {
	case last > first:
		return "rising"
	case last < first:
		return "falling"
	default:
		return "flat"
	}
}
