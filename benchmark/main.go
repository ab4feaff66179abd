// Package main provides a performance benchmarking tool for the Rollcast CLI.
// It measures execution times across different series lengths and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - rollcast binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic series files are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (untracked average, cold run and average of warm tracked runs).
type BenchmarkResult struct {
	Series      string
	Command     string
	NoTrackTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoTrackRuns int
	TrackRuns   int
	SeriesSizes map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     2 * time.Minute,
		NoTrackRuns: 3,
		TrackRuns:   4,
		SeriesSizes: map[string]int{
			"small":  1_000,
			"medium": 100_000,
			"large":  1_000_000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear run tracking using rollcast runs clear
	fmt.Printf("Clearing run data...\n")
	clearCmd := exec.Command("rollcast", "runs", "clear", "--run-backend", "sqlite")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run data: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run data cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies the rollcast binary and generates test series
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if rollcast is available
	if _, err := exec.LookPath("rollcast"); err != nil {
		return fmt.Errorf("rollcast binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}

	// Generate synthetic series of each size
	for name, size := range config.SeriesSizes {
		path := seriesPath(config, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeSeries(path, size); err != nil {
			return fmt.Errorf("cannot generate series %s: %w", name, err)
		}
	}

	return nil
}

// seriesPath returns the file path for a named benchmark series
func seriesPath(config BenchmarkConfig, name string) string {
	return filepath.Join(config.WorkDir, name+".csv")
}

// writeSeries generates a trending seasonal series of n points
func writeSeries(path string, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintln(f, "value"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		v := 100.0 + 10.0*math.Sin(float64(i)/30.0) + float64(i)*0.01
		if _, err := fmt.Fprintf(f, "%.4f\n", v); err != nil {
			return err
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured series sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d series, %v timeout, untracked: %d runs, tracked: %d runs\n",
		len(config.SeriesSizes), config.Timeout, config.NoTrackRuns, config.TrackRuns)

	for _, name := range []string{"small", "medium", "large"} {
		fmt.Printf("Benchmarking %s series (%d points)\n", name, config.SeriesSizes[name])

		path := seriesPath(config, name)

		// Forecast
		result := runBenchmarkSuite(config, name, path, "forecast", "rolling forecast", "--window 30 --predictor sma")
		results = append(results, result)

		// Eval
		result = runBenchmarkSuite(config, name, path, "eval", "split evaluation", "--window 30 --split 0.8")
		results = append(results, result)

		// Tune
		result = runBenchmarkSuite(config, name, path, "tune", "window sweep", "--windows 7,30,90 --target-accuracy 99")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both untracked and tracked benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, series, path, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, series)

	// Helper to run a benchmark phase
	runPhase := func(runBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, path, command, extraArgs, runBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: Untracked runs
	_, noTrackAvg := runPhase("none", config.NoTrackRuns, "Untracked")

	// Phase 2: Tracked runs
	coldTime, warmAvg := runPhase("sqlite", config.TrackRuns, "Tracked")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  Untracked average: %s, Cold time: %s, Warm average: %s\n", noTrackAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Series:      series,
		Command:     command,
		NoTrackTime: noTrackAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a rollcast command multiple times with the given run backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, path, command, extraArgs, runBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, path, "--run-backend", runBackend}
	if extraArgs != "" {
		args = append(args, strings.Fields(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("rollcast", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			elapsed := time.Since(start).Seconds()
			if cmdErr != nil {
				fmt.Printf("    Run %d failed: %v\nOutput: %s\n", run, cmdErr, string(output))
				continue
			}
			times = append(times, elapsed)
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			fmt.Printf("    Run %d timed out after %v\n", run, config.Timeout)
		}
	}

	if len(times) == 0 {
		return 0, nil
	}

	// First successful run is cold, the rest are warm
	return times[0], times[1:]
}

// saveResults writes benchmark results to a CSV file
func saveResults(results []BenchmarkResult) error {
	f, err := os.Create("benchmark_results.csv")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"series", "command", "untracked_avg", "cold_time", "warm_avg"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.Series, r.Command, r.NoTrackTime, r.ColdTime, r.WarmTime}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a human-readable summary of the results
func printSummary(results []BenchmarkResult) {
	fmt.Println("\nBenchmark summary:")
	for _, r := range results {
		fmt.Printf("  %-8s %-10s untracked=%-10s cold=%-10s warm=%s\n",
			r.Series, r.Command, r.NoTrackTime, r.ColdTime, r.WarmTime)
	}
	fmt.Println("Results saved to benchmark_results.csv")
}
