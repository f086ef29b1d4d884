package wordstore

import (
	"path/filepath"
	"testing"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway SQLite store for one test.
func newTestStore(t *testing.T) contract.WordStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewWordStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func rankRef(v int) *int         { return &v }
func freqRef(v float64) *float64 { return &v }

func testConfigs() []schema.CorpusConfig {
	return []schema.CorpusConfig{
		{Name: "books", Description: "Books", CorpusWeight: 0.8, MaxUnknownRank: rankRef(10000), Enabled: true},
		{Name: "subtitles", Description: "Subtitles", CorpusWeight: 1.0, Enabled: true},
	}
}

func TestSyncCorpora(t *testing.T) {
	store := newTestStore(t)

	t.Run("initial sync adds everything", func(t *testing.T) {
		result, err := store.SyncCorpora(testConfigs())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Added)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Disabled)
	})

	t.Run("second sync is a no-op", func(t *testing.T) {
		result, err := store.SyncCorpora(testConfigs())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.Added)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Disabled)
	})

	t.Run("changed weight updates in place", func(t *testing.T) {
		configs := testConfigs()
		configs[0].CorpusWeight = 0.5

		result, err := store.SyncCorpora(configs)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.Added)
		assert.Equal(t, 1, result.Updated)

		c, err := store.GetCorpus("books")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, 0.5, c.CorpusWeight)
	})

	t.Run("removed corpus is disabled, not deleted", func(t *testing.T) {
		result, err := store.SyncCorpora(testConfigs()[:1])
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 1, result.Disabled)

		c, err := store.GetCorpus("subtitles")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.False(t, c.Enabled)

		enabled, err := store.ListCorpora(true)
		require.NoError(t, err)
		assert.Len(t, enabled, 1)
	})
}

func TestGetCorpusMissing(t *testing.T) {
	store := newTestStore(t)

	c, err := store.GetCorpus("nope")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCreateCorpusAssignsID(t *testing.T) {
	store := newTestStore(t)

	c := &schema.Corpus{Name: "adhoc", Description: "Ad hoc", CorpusWeight: 1.0, Enabled: true}
	require.NoError(t, store.CreateCorpus(c))
	assert.NotZero(t, c.ID)

	loaded, err := store.GetCorpus("adhoc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, c.ID, loaded.ID)
	assert.Nil(t, loaded.MaxUnknownRank)
}

func TestImportObservations(t *testing.T) {
	store := newTestStore(t)
	corpus := &schema.Corpus{Name: "books", CorpusWeight: 1.0, Enabled: true}
	require.NoError(t, store.CreateCorpus(corpus))

	entries := []schema.WordEntry{
		{Word: "the", Rank: rankRef(1)},
		{Word: "of", Rank: rankRef(2)},
		{Word: "and", Rank: rankRef(3)},
	}

	t.Run("import and re-import are idempotent", func(t *testing.T) {
		imported, capReached, err := store.ImportObservations(corpus.ID, "en", entries, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, imported)
		assert.False(t, capReached)

		imported, _, err = store.ImportObservations(corpus.ID, "en", entries, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, imported)

		size, err := store.CorpusSize(corpus.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, size)

		words, err := store.ListWords()
		require.NoError(t, err)
		assert.Len(t, words, 3)
	})

	t.Run("cap stops the import", func(t *testing.T) {
		capped := &schema.Corpus{Name: "capped", CorpusWeight: 1.0, Enabled: true}
		require.NoError(t, store.CreateCorpus(capped))

		imported, capReached, err := store.ImportObservations(capped.ID, "en", entries, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, imported)
		assert.True(t, capReached)

		size, err := store.CorpusSize(capped.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, size)
	})

	t.Run("upsert never clobbers with null", func(t *testing.T) {
		// Frequency-only data for an existing observation must keep the rank.
		freqOnly := []schema.WordEntry{{Word: "the", Frequency: freqRef(0.06)}}
		_, _, err := store.ImportObservations(corpus.ID, "en", freqOnly, 0)
		require.NoError(t, err)

		obs, err := store.LoadObservations([]int64{corpus.ID})
		require.NoError(t, err)

		found := false
		for _, o := range obs {
			if o.Word == "the" {
				found = true
				require.NotNil(t, o.Rank)
				assert.Equal(t, 1, *o.Rank)
			}
		}
		assert.True(t, found)
	})
}

func TestDeriveRanksFromFrequencies(t *testing.T) {
	store := newTestStore(t)
	corpus := &schema.Corpus{Name: "wiki", CorpusWeight: 1.0, Enabled: true}
	require.NoError(t, store.CreateCorpus(corpus))

	entries := []schema.WordEntry{
		{Word: "banana", Frequency: freqRef(0.2)},
		{Word: "apple", Frequency: freqRef(0.5)},
		{Word: "cherry", Frequency: freqRef(0.3)},
	}
	_, _, err := store.ImportObservations(corpus.ID, "en", entries, 0)
	require.NoError(t, err)

	derived, err := store.DeriveRanksFromFrequencies(corpus.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, derived)

	obs, err := store.LoadObservations([]int64{corpus.ID})
	require.NoError(t, err)

	ranks := make(map[string]int)
	for _, o := range obs {
		require.NotNil(t, o.Rank)
		ranks[o.Word] = *o.Rank
	}
	// Descending frequency: apple 0.5, cherry 0.3, banana 0.2.
	assert.Equal(t, 1, ranks["apple"])
	assert.Equal(t, 2, ranks["cherry"])
	assert.Equal(t, 3, ranks["banana"])
}

func TestUpdateCombinedRanks(t *testing.T) {
	store := newTestStore(t)
	corpus := &schema.Corpus{Name: "books", CorpusWeight: 1.0, Enabled: true}
	require.NoError(t, store.CreateCorpus(corpus))

	entries := []schema.WordEntry{
		{Word: "alpha", Rank: rankRef(1)},
		{Word: "beta", Rank: rankRef(2)},
	}
	_, _, err := store.ImportObservations(corpus.ID, "en", entries, 0)
	require.NoError(t, err)

	updated, err := store.UpdateCombinedRanks([]contract.RankUpdate{
		{Word: "alpha", Rank: 1},
		{Word: "beta", Rank: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	words, err := store.ListWords()
	require.NoError(t, err)
	byToken := make(map[string]schema.Word)
	for _, w := range words {
		byToken[w.Token] = w
	}
	require.NotNil(t, byToken["alpha"].CombinedRank)
	assert.Equal(t, 1, *byToken["alpha"].CombinedRank)
	require.NotNil(t, byToken["beta"].CombinedRank)
	assert.Equal(t, 2, *byToken["beta"].CombinedRank)
}

func TestCorpusStatuses(t *testing.T) {
	store := newTestStore(t)
	_, err := store.SyncCorpora(testConfigs())
	require.NoError(t, err)

	books, err := store.GetCorpus("books")
	require.NoError(t, err)
	_, _, err = store.ImportObservations(books.ID, "en", []schema.WordEntry{
		{Word: "one", Rank: rankRef(1)},
		{Word: "two", Rank: rankRef(2)},
	}, 0)
	require.NoError(t, err)

	statuses, err := store.CorpusStatuses()
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	byName := make(map[string]schema.CorpusStatus)
	for _, s := range statuses {
		byName[s.Name] = s
	}
	assert.Equal(t, 2, byName["books"].WordCount)
	assert.Equal(t, 0, byName["subtitles"].WordCount)
}
