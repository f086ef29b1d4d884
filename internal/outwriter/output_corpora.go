package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCorpusStatuses outputs the corpus registry status, dispatching based
// on the output format configured.
func PrintCorpusStatuses(statuses []schema.CorpusStatus, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, statuses)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"corpus", "weight", "words", "enabled", "unknown_rank_cap", "description"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return writeCSVResultsForCorpora(cw, statuses, fmtFloat, intFmt)
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorpusTable(statuses, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
}

// writeCorpusTable generates and writes the human-readable corpus table.
func writeCorpusTable(statuses []schema.CorpusStatus, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Corpus", "Weight", "Words", "Enabled", "Cap", "Description"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	totalWords := 0
	for _, s := range statuses {
		data = append(data, []string{
			s.Name,
			fmtFloat(s.CorpusWeight),
			fmt.Sprintf(intFmt, s.WordCount),
			strconv.FormatBool(s.Enabled),
			formatRankCap(s.MaxUnknownRank, intFmt),
			s.Description,
		})
		totalWords += s.WordCount
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%d corpora, %d word observations in total\n", len(statuses), totalWords); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForCorpora writes the corpus registry status in CSV format.
func writeCSVResultsForCorpora(w *csv.Writer, statuses []schema.CorpusStatus, fmtFloat func(float64) string, intFmt string) error {
	for _, s := range statuses {
		rec := []string{
			s.Name,
			fmtFloat(s.CorpusWeight),
			fmt.Sprintf(intFmt, s.WordCount),
			strconv.FormatBool(s.Enabled),
			formatRankCap(s.MaxUnknownRank, intFmt),
			s.Description,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// formatRankCap renders the optional unknown-rank cap; absent means the
// default applies.
func formatRankCap(rankCap *int, intFmt string) string {
	if rankCap == nil {
		return "default"
	}
	return fmt.Sprintf(intFmt, *rankCap)
}
