package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Accuracy label constants.
const (
	ExcellentValue = "Excellent" // MAPE under 5
	GoodValue      = "Good"      // MAPE under 10
	FairValue      = "Fair"      // MAPE under 20
	PoorValue      = "Poor"      // everything else
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // strong, trustworthy forecast
	GoodColor      = color.New(color.FgCyan)              // acceptable forecast
	FairColor      = color.New(color.FgYellow)            // use with caution
	PoorColor      = color.New(color.FgRed, color.Bold)   // forecast not usable
)

// GetPlainLabel returns a plain text label grading forecast quality by
// MAPE. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(mape float64) string {
	switch {
	case mape < 5:
		return ExcellentValue
	case mape < 10:
		return GoodValue
	case mape < 20:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(mape float64) string {
	text := GetPlainLabel(mape)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName shortens a series name to maxWidth runes, keeping the tail
// since trailing segments are usually the most specific.
func TruncateName(name string, maxWidth int) string {
	if maxWidth <= 0 || len(name) <= maxWidth {
		return name
	}
	if maxWidth <= 3 {
		return name[len(name)-maxWidth:]
	}
	return "..." + name[len(name)-(maxWidth-3):]
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rollcast_runs.db"
	}
	return filepath.Join(homeDir, ".rollcast_runs.db")
}
