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

// PrintEvalResults outputs evaluation results, dispatching based on the output format configured.
func PrintEvalResults(result schema.EvalResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForEval(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForEval(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printEvalTable(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing eval table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForEval handles opening the file and calling the JSON writer.
func printJSONResultsForEval(result schema.EvalResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON eval results")
}

// printCSVResultsForEval handles opening the file and calling the CSV writer.
func printCSVResultsForEval(result schema.EvalResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"series", "predictor", "window", "split_index", "test_length", "mae", "rmse", "mape", "accuracy", "label"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			row := []string{
				result.Series,
				string(result.Predictor),
				fmt.Sprintf(intFmt, result.WindowSize),
				fmt.Sprintf(intFmt, result.SplitIndex),
				fmt.Sprintf(intFmt, result.TestLength),
				fmtFloat(result.Scores.MAE),
				fmtFloat(result.Scores.RMSE),
				fmtFloat(result.Scores.MAPE),
				fmtFloat(result.Scores.Accuracy()),
				contract.GetPlainLabel(result.Scores.MAPE),
			}
			return csvWriter.Write(row)
		})
	}, "Wrote CSV eval results")
}

// printEvalTable prints the score summary plus the tail of the test period.
func printEvalTable(result schema.EvalResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
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
		data := [][]string{{
			strconv.Itoa(result.WindowSize),
			fmtFloat(result.Scores.MAE),
			fmtFloat(result.Scores.RMSE),
			fmtFloat(result.Scores.MAPE),
			fmtFloat(result.Scores.Accuracy()),
			label(result.Scores.MAPE),
		}}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		name := contract.TruncateName(result.Series, getMaxTableNameWidth(cfg))
		normalized := ""
		if result.Normalized {
			normalized = ", normalized"
		}
		if _, err := fmt.Fprintf(w, "Scored %d test points for %s (split at %d%s, %s)\n",
			result.TestLength, name, result.SplitIndex, normalized, result.Predictor); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Evaluation completed in %v. Run backend: %s\n", duration, cfg.RunBackend); err != nil {
			return err
		}
		return nil
	}, "Wrote eval table")
}
