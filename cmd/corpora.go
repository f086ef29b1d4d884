package cmd

import (
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/internal/outwriter"
	"github.com/spf13/cobra"
)

// corporaCmd shows the corpus registry status.
var corporaCmd = &cobra.Command{
	Use:   "corpora",
	Short: "List registered corpora and their import status.",
	Long: `Show every corpus known to the database with its aggregation weight,
imported word count, enabled state and unknown-rank cap.

Use this to verify a sync took effect and to see which corpora still
need an import.

Examples:
  # Human-readable table
  lexirank corpora

  # Machine-readable status
  lexirank corpora --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		statuses, err := store.CorpusStatuses()
		if err != nil {
			contract.LogFatal("Cannot read corpus statuses", err)
		}
		if err := outwriter.PrintCorpusStatuses(statuses, cfg); err != nil {
			contract.LogFatal("Cannot write corpus statuses", err)
		}
	},
}
