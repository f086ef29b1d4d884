// Package algo holds the pure numeric routines behind rank aggregation:
// harmonic means, log z-scores and rank correlation.
package algo

// HarmonicMean combines per-corpus ranks into one score: N / sum(1/rank).
// The smallest rank dominates the sum of reciprocals, so a word ranked
// very well in one corpus scores better than a word with uniformly
// middling ranks, while a large gap-filled rank only dampens the score
// instead of drowning it the way an arithmetic average would.
// Returns 0 for an empty input; callers substitute their own fallback.
func HarmonicMean(ranks []int) float64 {
	if len(ranks) == 0 {
		return 0
	}
	var recip float64
	for _, r := range ranks {
		recip += 1.0 / float64(r)
	}
	return float64(len(ranks)) / recip
}
