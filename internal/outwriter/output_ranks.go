package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRankResults outputs the combined ranking, dispatching based on the
// output format configured.
func PrintRankResults(results []schema.RankResult, corpusNames []string, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankCSVResults(results, corpusNames, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(results, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankJSONResults handles opening the file and calling the JSON writer.
func writeRankJSONResults(results []schema.RankResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRanks(w, results)
	}, "Wrote JSON")
}

// writeRankCSVResults handles opening the file and calling the CSV writer.
func writeRankCSVResults(results []schema.RankResult, corpusNames []string, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "word", "harmonic_mean", "z_score", "band", "outlier"}
		header = append(header, corpusNames...)
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return writeCSVResultsForRanks(cw, results, corpusNames, fmtFloat, intFmt)
		})
	}, "Wrote CSV")
}

// writeRankTable generates and writes the human-readable table.
func writeRankTable(results []schema.RankResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Word", "Score", "Z-Score", "Band", "Flag"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	bandLabel := contract.GetPlainLabel
	if cfg.UseColors {
		bandLabel = contract.GetColorLabel
	}

	var data [][]string
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.CombinedRank),
			contract.TruncateWord(r.Word, getMaxTableWordWidth(cfg)),
			fmtFloat(r.HarmonicMean),
			fmtFloat(r.ZScore),
			bandLabel(r.CombinedRank),
			contract.GetOutlierFlag(r.IsOutlier, cfg.UseColors),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	numWords := len(results)
	numOutliers := 0
	for _, r := range results {
		if r.IsOutlier {
			numOutliers++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d words (outliers flagged: %d)\n", numWords, numOutliers); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRanks writes the combined ranking in CSV format. The
// per-corpus rank columns follow the shared leading columns, one column per
// corpus in scope.
func writeCSVResultsForRanks(w *csv.Writer, results []schema.RankResult, corpusNames []string, fmtFloat func(float64) string, intFmt string) error {
	for _, r := range results {
		rec := []string{
			fmt.Sprintf(intFmt, r.CombinedRank),
			r.Word,
			fmtFloat(r.HarmonicMean),
			fmtFloat(r.ZScore),
			contract.GetPlainLabel(r.CombinedRank),
			contract.GetOutlierFlag(r.IsOutlier, false),
		}
		for _, name := range corpusNames {
			rec = append(rec, fmt.Sprintf(intFmt, r.CorpusRanks[name]))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRanks writes the combined ranking in JSON format.
func writeJSONResultsForRanks(w io.Writer, results []schema.RankResult) error {
	// 1. Prepare the data structure for JSON with band added
	type JSONRankResult struct {
		Band string `json:"band"`
		schema.RankResult
	}

	output := make([]JSONRankResult, len(results))
	for i, r := range results {
		output[i] = JSONRankResult{
			Band:       contract.GetPlainLabel(r.CombinedRank),
			RankResult: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
