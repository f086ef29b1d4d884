package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogZScores tests z-score computation over log-transformed values.
func TestLogZScores(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, LogZScores(nil))
	})

	t.Run("zero spread", func(t *testing.T) {
		assert.Nil(t, LogZScores([]float64{5, 5, 5, 5}))
	})

	t.Run("scores sum to zero", func(t *testing.T) {
		zs := LogZScores([]float64{1, 10, 100, 1000})
		require.Len(t, zs, 4)

		var sum float64
		for _, z := range zs {
			sum += z
		}
		assert.InDelta(t, 0.0, sum, 1e-9)
	})

	t.Run("symmetric in log space", func(t *testing.T) {
		// 1, 10, 100 are evenly spaced after the log transform, so the
		// extremes get mirrored z-scores.
		zs := LogZScores([]float64{1, 10, 100})
		require.Len(t, zs, 3)
		assert.InDelta(t, -zs[2], zs[0], 1e-9)
		assert.InDelta(t, 0.0, zs[1], 1e-9)
	})

	t.Run("extreme value dominates", func(t *testing.T) {
		values := []float64{10, 11, 12, 10, 11, 12, 10, 11, 12, 10, 11, 1e6}
		zs := LogZScores(values)
		require.Len(t, zs, len(values))

		maxAbs := 0.0
		maxIdx := -1
		for i, z := range zs {
			if math.Abs(z) > maxAbs {
				maxAbs = math.Abs(z)
				maxIdx = i
			}
		}
		assert.Equal(t, len(values)-1, maxIdx)
		assert.Greater(t, maxAbs, 2.0)
	})
}
