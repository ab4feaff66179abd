package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/rollcast/internal/contract"
	"github.com/huangsam/rollcast/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintWindowsResults outputs windowed-dataset summaries, dispatching based on the output format configured.
func PrintWindowsResults(result schema.WindowsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForWindows(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForWindows(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printWindowsTable(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing windows table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForWindows handles opening the file and calling the JSON writer.
func printJSONResultsForWindows(result schema.WindowsResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON windows results")
}

// printCSVResultsForWindows handles opening the file and calling the CSV writer.
func printCSVResultsForWindows(result schema.WindowsResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"batch", "size", "first_label", "last_label"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, b := range result.Batches {
				row := []string{
					fmt.Sprintf(intFmt, b.Index),
					fmt.Sprintf(intFmt, b.Size),
					fmtFloat(b.FirstLabel),
					fmtFloat(b.LastLabel),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV windows results")
}

// printWindowsTable prints a per-batch summary of the shuffled dataset.
func printWindowsTable(result schema.WindowsResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		headers := []string{"Batch", "Size", "First Label", "Last Label"}
		table.Header(headers)

		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, b := range result.Batches {
			row := []string{
				strconv.Itoa(b.Index),
				strconv.Itoa(b.Size),
				fmtFloat(b.FirstLabel),
				fmtFloat(b.LastLabel),
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
		if _, err := fmt.Fprintf(w, "Showing %d of %d batches for %s (%d pairs, window %d, batch %d, buffer %d, seed %d)\n",
			len(result.Batches), result.BatchCount, name, result.PairCount,
			result.WindowSize, result.BatchSize, result.ShuffleBuffer, result.Seed); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Dataset pass completed in %v\n", duration); err != nil {
			return err
		}
		return nil
	}, "Wrote windows table")
}
