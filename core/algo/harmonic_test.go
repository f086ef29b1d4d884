package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHarmonicMean tests the harmonic mean calculation.
func TestHarmonicMean(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []int
		expected float64
		delta    float64
	}{
		{
			name:     "empty slice",
			ranks:    []int{},
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "single rank",
			ranks:    []int{7},
			expected: 7.0,
			delta:    0.001,
		},
		{
			name:     "equal ranks",
			ranks:    []int{4, 4, 4},
			expected: 4.0,
			delta:    0.001,
		},
		{
			name:     "dominated by the small rank",
			ranks:    []int{1, 100},
			expected: 1.9802,
			delta:    0.001,
		},
		{
			name:     "three mixed ranks",
			ranks:    []int{2, 3, 6},
			expected: 3.0,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HarmonicMean(tt.ranks), tt.delta)
		})
	}
}

// TestHarmonicMeanFavorsOneStrongCorpus verifies the property the
// aggregator relies on: the smallest rank dominates, so a word ranked
// very well in one corpus beats a word with uniformly middling ranks.
func TestHarmonicMeanFavorsOneStrongCorpus(t *testing.T) {
	strong := HarmonicMean([]int{10, 1000})
	balanced := HarmonicMean([]int{100, 100})

	assert.InDelta(t, 19.8, strong, 0.1)
	assert.InDelta(t, 100.0, balanced, 0.001)
	assert.Less(t, strong, balanced)
}

// TestHarmonicMeanBelowArithmeticForLopsidedRanks checks that a large
// gap-filled rank dampens the score instead of dominating it.
func TestHarmonicMeanBelowArithmeticForLopsidedRanks(t *testing.T) {
	ranks := []int{1, 5000, 5000}
	arithmetic := float64(1+5000+5000) / 3.0

	assert.Less(t, HarmonicMean(ranks), arithmetic)
}
