package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/internal/parquet"
	"github.com/huangsam/rollcast/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintForecastResults outputs rolling-forecast results, dispatching based on the output format configured.
func PrintForecastResults(result schema.ForecastResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForForecast(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForForecast(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForForecast(result, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printForecastTable(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing forecast table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForForecast handles opening the file and calling the JSON writer.
func printJSONResultsForForecast(result schema.ForecastResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON forecast results")
}

// printCSVResultsForForecast handles opening the file and calling the CSV writer.
func printCSVResultsForForecast(result schema.ForecastResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"series", "predictor", "offset", "target", "predicted"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, p := range result.Points {
				row := []string{
					result.Series,
					string(result.Predictor),
					fmt.Sprintf(intFmt, p.Offset),
					fmt.Sprintf(intFmt, p.Target),
					fmtFloat(p.Predicted),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV forecast results")
}

// printParquetResultsForForecast writes forecast points to a Parquet file.
// Parquet output requires an explicit output file.
func printParquetResultsForForecast(result schema.ForecastResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ConvertForecastResult(result)
	if err := parquet.WritePointForecastsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("💾 Wrote %d forecast points to %s\n", len(rows), cfg.OutputFile)
	return nil
}

// printForecastTable prints the most recent forecast points in a table.
func printForecastTable(result schema.ForecastResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		headers := []string{"Offset", "Target", "Predicted"}
		table.Header(headers)

		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		// Show the tail of the forecast; the latest predictions are the
		// ones people act on.
		points := result.Points
		if len(points) > cfg.ResultLimit {
			points = points[len(points)-cfg.ResultLimit:]
		}

		var data [][]string
		for _, p := range points {
			row := []string{
				strconv.Itoa(p.Offset),
				strconv.Itoa(p.Target),
				fmtFloat(p.Predicted),
			}
			data = append(data, row)
		}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		name := contract.TruncateName(result.Series, getMaxTableNameWidth(cfg))
		if _, err := fmt.Fprintf(w, "Showing %d of %d points for %s (window %d, %s, %s trend)\n",
			len(points), len(result.Points), name, result.WindowSize, result.Predictor,
			schema.TrendDirection(result.Points)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Forecast completed in %v. Run backend: %s\n", duration, cfg.RunBackend); err != nil {
			return err
		}
		return nil
	}, "Wrote forecast table")
}
