package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveUnknownRank(t *testing.T) {
	tests := []struct {
		name       string
		maxUnknown *int
		corpusSize int
		fallback   int
		expected   int
	}{
		{
			name:       "small corpus uses the default",
			maxUnknown: nil,
			corpusSize: 500,
			fallback:   12500,
			expected:   12500,
		},
		{
			name:       "large corpus floors at its own size",
			maxUnknown: nil,
			corpusSize: 20000,
			fallback:   12500,
			expected:   20000,
		},
		{
			name:       "cap bounds the default",
			maxUnknown: intPtr(1500),
			corpusSize: 800,
			fallback:   12500,
			expected:   1500,
		},
		{
			name:       "cap bounds a large corpus",
			maxUnknown: intPtr(10000),
			corpusSize: 50000,
			fallback:   12500,
			expected:   10000,
		},
		{
			name:       "cap above the base is inert",
			maxUnknown: intPtr(30000),
			corpusSize: 100,
			fallback:   12500,
			expected:   12500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &CorpusConfig{MaxUnknownRank: tt.maxUnknown}
			assert.Equal(t, tt.expected, cfg.EffectiveUnknownRank(tt.corpusSize, tt.fallback))

			// The stored corpus applies the same bound.
			c := &Corpus{MaxUnknownRank: tt.maxUnknown}
			assert.Equal(t, tt.expected, c.EffectiveUnknownRank(tt.corpusSize, tt.fallback))
		})
	}
}

func TestCorpusRegistry(t *testing.T) {
	t.Run("names are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for _, c := range CorpusRegistry {
			_, dup := seen[c.Name]
			assert.False(t, dup, "duplicate corpus name %s", c.Name)
			seen[c.Name] = struct{}{}
		}
	})

	t.Run("lookup by name", func(t *testing.T) {
		cfg := GetCorpusConfig("subtitles")
		require.NotNil(t, cfg)
		assert.Equal(t, TSVFile, cfg.FileType)

		assert.Nil(t, GetCorpusConfig("missing"))
	})

	t.Run("enabled configs only", func(t *testing.T) {
		for _, c := range EnabledCorpusConfigs() {
			assert.True(t, c.Enabled)
		}
	})
}
