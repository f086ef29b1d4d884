package outwriter

import (
	"fmt"
	"io"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// PrintWordList writes a plain ranked word list, one token per line in
// combined-rank order. The format is intentionally bare so downstream
// tooling (flashcard decks, spell checkers) can consume it directly.
func PrintWordList(results []schema.RankResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Word); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote word list")
}

// PrintSyncResult summarizes a corpus registry sync on stdout.
func PrintSyncResult(result schema.SyncResult) {
	if !result.Success {
		fmt.Printf("Sync failed with %d error(s):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		return
	}
	fmt.Printf("Sync complete: %d added, %d updated, %d disabled\n",
		result.Added, result.Updated, result.Disabled)
}

// PrintImportStats summarizes a corpus import on stdout.
func PrintImportStats(stats schema.ImportStats) {
	fmt.Printf("Imported %d/%d entries into %s\n", stats.Imported, stats.Total, stats.Corpus)
	if stats.SkippedNumerals > 0 {
		fmt.Printf("  skipped %d tokens containing digits\n", stats.SkippedNumerals)
	}
	if stats.MergedVariants > 0 {
		fmt.Printf("  merged %d case variants\n", stats.MergedVariants)
	}
	if stats.RanksDerived > 0 {
		fmt.Printf("  derived %d ranks from frequencies\n", stats.RanksDerived)
	}
	if stats.CapReached {
		fmt.Println("  word cap reached; remaining entries ignored")
	}
}
