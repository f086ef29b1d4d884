package cmd

import (
	"fmt"
	"time"

	"github.com/mpetrulis/lexirank/core"
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/internal/outwriter"
	"github.com/mpetrulis/lexirank/internal/parquet"
	"github.com/mpetrulis/lexirank/schema"
	"github.com/spf13/cobra"
)

// exportCmd groups the export subcommands.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the combined ranking for downstream tools",
	Long: `Export the combined word ranking in consumer-friendly formats.

Subcommands:
  wordlist - plain ranked word list, one token per line
  data     - full result rows as csv, json or parquet

Outliers are excluded from exports by default; pass --include-outliers
to keep them.

Examples:
  # Top 5000 words for a flashcard deck
  lexirank export wordlist --limit 5000 --output-file words.txt

  # Full dataset for DuckDB/pandas
  lexirank export data --limit 1000 --output parquet --output-file ranks.parquet`,
}

// exportWordlistCmd writes the plain ranked word list.
var exportWordlistCmd = &cobra.Command{
	Use:     "wordlist",
	Short:   "Export a plain ranked word list, one token per line",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results := computeExportResults()
		if err := outwriter.PrintWordList(results, cfg); err != nil {
			contract.LogFatal("Cannot write word list", err)
		}
	},
}

// exportDataCmd writes full result rows in the configured format.
var exportDataCmd = &cobra.Command{
	Use:     "data",
	Short:   "Export full ranking rows as csv, json or parquet",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results := computeExportResults()

		if cfg.Output == schema.ParquetOut {
			if cfg.OutputFile == "" {
				contract.LogFatal("Cannot export parquet", fmt.Errorf("--output-file is required for parquet output"))
			}
			records, err := parquet.FromRankResults(results)
			if err != nil {
				contract.LogFatal("Cannot prepare parquet records", err)
			}
			if err := parquet.WriteWordRanksParquet(records, cfg.OutputFile); err != nil {
				contract.LogFatal("Cannot write parquet file", err)
			}
			fmt.Printf("Wrote %d words to %s\n", len(records), cfg.OutputFile)
			return
		}

		corpusNames := core.CorpusNamesInScope(results)
		if err := outwriter.PrintRankResults(results, corpusNames, cfg, time.Duration(0)); err != nil {
			contract.LogFatal("Cannot write export", err)
		}
	},
}

// computeExportResults runs the aggregation for exports: never persists,
// drops outliers unless asked to keep them, and applies the result limit.
func computeExportResults() []schema.RankResult {
	results, _, err := core.CalculateCombinedRanks(store, core.AggregateOptions{
		CorpusNames:      cfg.Corpora,
		OutlierThreshold: cfg.OutlierThreshold,
		UnknownRank:      cfg.UnknownRank,
	})
	if err != nil {
		contract.LogFatal("Cannot compute combined ranks", err)
	}

	if !cfg.IncludeOutliers {
		results = core.FilterOutliers(results)
	}
	return core.TopResults(results, cfg.ResultLimit)
}
