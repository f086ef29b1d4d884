package cmd

import (
	"fmt"
	"time"

	"github.com/mpetrulis/lexirank/core"
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/internal/outwriter"
	"github.com/spf13/cobra"
)

// ranksCmd computes the combined ranking and shows the top words.
var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "Compute combined word ranks across corpora.",
	Long: `Combine per-corpus word ranks into one ranking.

Every word known to any corpus in scope gets a harmonic mean of its
per-corpus ranks; words absent from a corpus are filled with that
corpus's effective unknown rank so absence is penalized, not ignored.
Words are then ranked by that score, ascending, and z-score outliers
are flagged.

Computed ranks are written back onto the word rows unless --dry-run is
set. The computation is deterministic, so re-running it is always safe.

Examples:
  # Rank across all enabled corpora and persist
  lexirank ranks

  # Preview without persisting
  lexirank ranks --dry-run --limit 50

  # Restrict to two corpora
  lexirank ranks --corpora subtitles,wiki_vital

  # Export the full ranking as CSV
  lexirank ranks --limit 1000 --output csv --output-file ranks.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		results, updated, err := core.CalculateCombinedRanks(store, core.AggregateOptions{
			CorpusNames:      cfg.Corpora,
			OutlierThreshold: cfg.OutlierThreshold,
			UnknownRank:      cfg.UnknownRank,
			Persist:          !cfg.DryRun,
		})
		if err != nil {
			contract.LogFatal("Cannot compute combined ranks", err)
		}
		duration := time.Since(start)

		corpusNames := core.CorpusNamesInScope(results)
		shown := core.TopResults(results, cfg.ResultLimit)
		if err := outwriter.PrintRankResults(shown, corpusNames, cfg, duration); err != nil {
			contract.LogFatal("Cannot write rank results", err)
		}

		if cfg.DryRun {
			fmt.Printf("Dry run: %d words ranked, nothing persisted\n", len(results))
		} else {
			fmt.Printf("Persisted %d changed combined ranks\n", updated)
		}
	},
}
