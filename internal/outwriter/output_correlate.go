package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCorrelationResults outputs pairwise corpus correlations, dispatching
// based on the output format configured.
func PrintCorrelationResults(results []schema.CorrelationResult, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"corpus_a", "corpus_b", "spearman", "shared_words"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, r := range results {
					rec := []string{
						r.CorpusA,
						r.CorpusB,
						fmtFloat(r.Correlation),
						fmt.Sprintf(intFmt, r.SampleSize),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorrelationTable(results, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
}

// writeCorrelationTable generates and writes the human-readable table.
func writeCorrelationTable(results []schema.CorrelationResult, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(writer, "No corpus pairs share enough words for correlation")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Corpus A", "Corpus B", "Spearman", "Shared Words"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			r.CorpusA,
			r.CorpusB,
			fmtFloat(r.Correlation),
			fmt.Sprintf(intFmt, r.SampleSize),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
