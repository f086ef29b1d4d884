package cmd

import (
	"github.com/mpetrulis/lexirank/core"
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/internal/outwriter"
	"github.com/spf13/cobra"
)

// correlateCmd measures agreement between corpora.
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Measure rank agreement between corpora.",
	Long: `Compute the Spearman rank correlation for every pair of enabled
corpora, over the words genuinely observed in both.

High correlation means two corpora largely agree on which words matter;
a low value suggests one of them covers a different register or domain.
Pairs sharing too few words are omitted.

Examples:
  # Correlation table for all enabled corpora
  lexirank correlate

  # Export for further analysis
  lexirank correlate --output csv --output-file correlations.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results, err := core.CorrelateCorpora(store)
		if err != nil {
			contract.LogFatal("Cannot correlate corpora", err)
		}
		if err := outwriter.PrintCorrelationResults(results, cfg); err != nil {
			contract.LogFatal("Cannot write correlations", err)
		}
	},
}
