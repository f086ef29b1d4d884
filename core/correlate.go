package core

import (
	"github.com/mpetrulis/lexirank/core/algo"
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// minCorrelationSample is the smallest shared-word set worth correlating.
const minCorrelationSample = 10

// CorrelateCorpora computes the Spearman rank correlation between every
// pair of enabled corpora, over words genuinely observed in both (gap
// fills are excluded, since substituted ranks would inflate agreement).
// Pairs with too few shared words are omitted.
func CorrelateCorpora(store contract.WordStore) ([]schema.CorrelationResult, error) {
	corpora, err := store.ListCorpora(true)
	if err != nil {
		return nil, err
	}
	if len(corpora) < 2 {
		contract.LogWarn("need at least 2 corpora for correlation analysis", nil)
		return nil, nil
	}

	corpusIDs := make([]int64, len(corpora))
	for i, c := range corpora {
		corpusIDs[i] = c.ID
	}
	observations, err := store.LoadObservations(corpusIDs)
	if err != nil {
		return nil, err
	}

	ranksByCorpus := make(map[int64]map[string]int, len(corpora))
	for _, obs := range observations {
		if obs.Rank == nil {
			continue
		}
		if ranksByCorpus[obs.CorpusID] == nil {
			ranksByCorpus[obs.CorpusID] = make(map[string]int)
		}
		ranksByCorpus[obs.CorpusID][obs.Word] = *obs.Rank
	}

	var results []schema.CorrelationResult
	for i := 0; i < len(corpora); i++ {
		for j := i + 1; j < len(corpora); j++ {
			a, b := corpora[i], corpora[j]

			var ranksA, ranksB []float64
			for word, rankA := range ranksByCorpus[a.ID] {
				if rankB, ok := ranksByCorpus[b.ID][word]; ok {
					ranksA = append(ranksA, float64(rankA))
					ranksB = append(ranksB, float64(rankB))
				}
			}
			if len(ranksA) <= minCorrelationSample {
				continue
			}

			results = append(results, schema.CorrelationResult{
				CorpusA:     a.Name,
				CorpusB:     b.Name,
				Correlation: algo.Spearman(ranksA, ranksB),
				SampleSize:  len(ranksA),
			})
		}
	}
	return results, nil
}
