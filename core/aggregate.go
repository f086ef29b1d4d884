package core

import (
	"sort"

	"github.com/mpetrulis/lexirank/core/algo"
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// AggregateOptions controls a combined-rank computation.
type AggregateOptions struct {
	CorpusNames      []string // Restrict to these corpora; empty = all enabled
	OutlierThreshold float64  // Z-score magnitude for outlier flagging
	UnknownRank      int      // Default rank for words absent from a corpus
	Persist          bool     // Write combined ranks back onto word rows
}

// CalculateCombinedRanks combines per-corpus ranks for every known word
// into one harmonic-mean score, ranks all words by that score, flags
// statistical outliers, and optionally persists the new combined ranks.
//
// Words absent from a corpus are gap-filled with that corpus's effective
// unknown rank, so absence never out-ranks the corpus's own tail. A scope
// that resolves to zero corpora is reported and yields an empty result,
// not an error. Re-running after a partial persistence failure is safe:
// the computation is deterministic and updates are idempotent.
func CalculateCombinedRanks(store contract.WordStore, opts AggregateOptions) ([]schema.RankResult, int, error) {
	corpora, err := selectCorpora(store, opts.CorpusNames)
	if err != nil {
		return nil, 0, err
	}
	if len(corpora) == 0 {
		contract.LogWarn("no corpora in scope for aggregation", nil)
		return nil, 0, nil
	}

	// Per-corpus effective unknown rank, bounded by corpus size and the
	// configured cap.
	unknownRanks := make(map[int64]int, len(corpora))
	corpusIDs := make([]int64, len(corpora))
	nameByID := make(map[int64]string, len(corpora))
	for i, c := range corpora {
		size, err := store.CorpusSize(c.ID)
		if err != nil {
			return nil, 0, err
		}
		unknownRanks[c.ID] = c.EffectiveUnknownRank(size, opts.UnknownRank)
		corpusIDs[i] = c.ID
		nameByID[c.ID] = c.Name
	}

	observations, err := store.LoadObservations(corpusIDs)
	if err != nil {
		return nil, 0, err
	}
	ranksByWord := make(map[string]map[int64]int)
	for _, obs := range observations {
		if obs.Rank == nil {
			continue
		}
		if ranksByWord[obs.Word] == nil {
			ranksByWord[obs.Word] = make(map[int64]int, len(corpora))
		}
		ranksByWord[obs.Word][obs.CorpusID] = *obs.Rank
	}

	words, err := store.ListWords()
	if err != nil {
		return nil, 0, err
	}

	results := make([]schema.RankResult, 0, len(words))
	for _, word := range words {
		resolved := make(map[string]int, len(corpora))
		ranks := make([]int, 0, len(corpora))
		for _, id := range corpusIDs {
			rank, ok := ranksByWord[word.Token][id]
			if !ok {
				rank = unknownRanks[id]
			}
			resolved[nameByID[id]] = rank
			ranks = append(ranks, rank)
		}

		mean := algo.HarmonicMean(ranks)
		if mean == 0 {
			mean = float64(opts.UnknownRank)
		}

		results = append(results, schema.RankResult{
			Word:         word.Token,
			CorpusRanks:  resolved,
			HarmonicMean: mean,
			CurrentRank:  word.CombinedRank,
		})
	}

	// Ascending by score; word text breaks ties so output is deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].HarmonicMean != results[j].HarmonicMean {
			return results[i].HarmonicMean < results[j].HarmonicMean
		}
		return results[i].Word < results[j].Word
	})
	for i := range results {
		results[i].CombinedRank = i + 1
	}

	flagOutliers(results, opts.OutlierThreshold)

	updated := 0
	if opts.Persist {
		var updates []contract.RankUpdate
		for i := range results {
			if results[i].CurrentRank == nil || *results[i].CurrentRank != results[i].CombinedRank {
				updates = append(updates, contract.RankUpdate{Word: results[i].Word, Rank: results[i].CombinedRank})
			}
		}
		if updated, err = store.UpdateCombinedRanks(updates); err != nil {
			return results, updated, err
		}
	}

	return results, updated, nil
}

// selectCorpora resolves the aggregation scope: enabled corpora with a
// non-zero weight, optionally restricted by name. A zero weight excludes
// a corpus from aggregation without deleting its data.
func selectCorpora(store contract.WordStore, names []string) ([]schema.Corpus, error) {
	all, err := store.ListCorpora(true)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	var corpora []schema.Corpus
	for _, c := range all {
		if c.CorpusWeight == 0 {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[c.Name]; !ok {
				continue
			}
		}
		corpora = append(corpora, c)
	}
	return corpora, nil
}

// flagOutliers computes z-scores over log-transformed harmonic means and
// marks results beyond the threshold. Candidate sets at or below
// schema.MinOutlierSample are too small for meaningful statistics and are
// left untouched (z-score 0, no outliers), as is a zero-spread set.
func flagOutliers(results []schema.RankResult, threshold float64) {
	if len(results) <= schema.MinOutlierSample {
		return
	}

	means := make([]float64, len(results))
	for i := range results {
		means[i] = results[i].HarmonicMean
	}

	zs := algo.LogZScores(means)
	if zs == nil {
		return
	}
	for i := range results {
		results[i].ZScore = zs[i]
		if zs[i] > threshold || zs[i] < -threshold {
			results[i].IsOutlier = true
		}
	}
}

// TopResults returns the first limit results; the slice is already in
// combined-rank order.
func TopResults(results []schema.RankResult, limit int) []schema.RankResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

// FilterOutliers drops flagged outliers from a result list.
func FilterOutliers(results []schema.RankResult) []schema.RankResult {
	kept := make([]schema.RankResult, 0, len(results))
	for _, r := range results {
		if !r.IsOutlier {
			kept = append(kept, r)
		}
	}
	return kept
}

// CorpusNamesInScope lists the corpus names present in a result set, in
// stable order, for export headers.
func CorpusNamesInScope(results []schema.RankResult) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range results {
		for name := range r.CorpusRanks {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
