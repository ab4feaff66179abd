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

// PrintTuneResults outputs window tuning results, dispatching based on the output format configured.
func PrintTuneResults(result schema.TuneResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForTune(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForTune(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printTuneTable(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing tune table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForTune handles opening the file and calling the JSON writer.
func printJSONResultsForTune(result schema.TuneResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON tune results")
}

// printCSVResultsForTune handles opening the file and calling the CSV writer.
func printCSVResultsForTune(result schema.TuneResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"window", "mae", "rmse", "mape", "accuracy", "halted"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, c := range result.Candidates {
				row := []string{
					fmt.Sprintf(intFmt, c.WindowSize),
					fmtFloat(c.Scores.MAE),
					fmtFloat(c.Scores.RMSE),
					fmtFloat(c.Scores.MAPE),
					fmtFloat(c.Scores.Accuracy()),
					strconv.FormatBool(c.Halted),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV tune results")
}

// printTuneTable prints the candidate sweep, one row per window size.
func printTuneTable(result schema.TuneResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		headers := []string{"Window", "MAE", "RMSE", "MAPE", "Accuracy", "Label"}
		table.Header(headers)

		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		label := contract.GetPlainLabel
		if cfg.UseColors {
			label = contract.GetColorLabel
		}
		var data [][]string
		for _, c := range result.Candidates {
			window := strconv.Itoa(c.WindowSize)
			if c.Halted {
				window += " *"
			}
			row := []string{
				window,
				fmtFloat(c.Scores.MAE),
				fmtFloat(c.Scores.RMSE),
				fmtFloat(c.Scores.MAPE),
				fmtFloat(c.Scores.Accuracy()),
				label(c.Scores.MAPE),
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
		if result.Halted {
			if _, err := fmt.Fprintf(w, "Best window %d for %s (halted at target accuracy %.1f%%)\n",
				result.BestWindow, name, result.TargetAccuracy); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "Best window %d for %s (target accuracy %.1f%% not reached)\n",
				result.BestWindow, name, result.TargetAccuracy); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Tuning completed in %v over %d candidates\n", duration, len(result.Candidates)); err != nil {
			return err
		}
		return nil
	}, "Wrote tune table")
}
