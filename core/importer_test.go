package core

import (
	"testing"

	"github.com/mpetrulis/lexirank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFrequencyDataRankedList(t *testing.T) {
	store := newTestStore(t)
	path := writeTempFile(t, "list.json", `["The", "the", "of", "and", "word2"]`)

	stats, err := ImportFrequencyData(store, ImportParams{
		FilePath:     path,
		CorpusName:   "books",
		LanguageCode: "en",
		FileType:     schema.JSONFile,
		ValueType:    schema.AutoValues,
	})
	require.NoError(t, err)

	// "The"/"the" merge to one entry keeping rank 1, "word2" is dropped.
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Imported)
	assert.Equal(t, 1, stats.SkippedNumerals)
	assert.Equal(t, 1, stats.MergedVariants)
	assert.Equal(t, 0, stats.RanksDerived)
	assert.False(t, stats.CapReached)

	// The corpus was auto-created.
	corpus, err := store.GetCorpus("books")
	require.NoError(t, err)
	require.NotNil(t, corpus)
	assert.True(t, corpus.Enabled)
	assert.Equal(t, 1.0, corpus.CorpusWeight)

	obs, err := store.LoadObservations([]int64{corpus.ID})
	require.NoError(t, err)
	ranks := make(map[string]int)
	for _, o := range obs {
		require.NotNil(t, o.Rank)
		ranks[o.Word] = *o.Rank
	}
	assert.Equal(t, map[string]int{"the": 1, "of": 3, "and": 4}, ranks)
}

func TestImportFrequencyDataDerivesRanks(t *testing.T) {
	store := newTestStore(t)
	path := writeTempFile(t, "freq.json",
		`{"global_word_frequency": {"apple": 0.5, "banana": 0.2, "cherry": 0.3}}`)

	stats, err := ImportFrequencyData(store, ImportParams{
		FilePath:   path,
		CorpusName: "wiki",
		FileType:   schema.JSONFile,
		ValueType:  schema.AutoValues,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Imported)
	assert.Equal(t, 3, stats.RanksDerived)

	corpus, err := store.GetCorpus("wiki")
	require.NoError(t, err)
	require.NotNil(t, corpus)

	obs, err := store.LoadObservations([]int64{corpus.ID})
	require.NoError(t, err)
	ranks := make(map[string]int)
	for _, o := range obs {
		require.NotNil(t, o.Rank)
		ranks[o.Word] = *o.Rank
	}
	assert.Equal(t, map[string]int{"apple": 1, "cherry": 2, "banana": 3}, ranks)
}

func TestImportFrequencyDataMaxWords(t *testing.T) {
	store := newTestStore(t)
	path := writeTempFile(t, "list.json", `["one", "two", "three", "four"]`)

	stats, err := ImportFrequencyData(store, ImportParams{
		FilePath:   path,
		CorpusName: "capped",
		FileType:   schema.JSONFile,
		ValueType:  schema.RankValues,
		MaxWords:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Imported)
	assert.True(t, stats.CapReached)
}

func TestImportFrequencyDataUnsupportedShape(t *testing.T) {
	store := newTestStore(t)
	path := writeTempFile(t, "bad.json", `42`)

	// A bad file degrades to a zero-imported result so batch imports can
	// continue, but the corpus row still exists.
	stats, err := ImportFrequencyData(store, ImportParams{
		FilePath:   path,
		CorpusName: "broken",
		FileType:   schema.JSONFile,
		ValueType:  schema.AutoValues,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Imported)
	assert.Equal(t, 0, stats.Total)

	corpus, err := store.GetCorpus("broken")
	require.NoError(t, err)
	assert.NotNil(t, corpus)
}

func TestImportCorpusUnknownName(t *testing.T) {
	store := newTestStore(t)

	_, err := ImportCorpus(store, t.TempDir(), "no-such-corpus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in configuration")
}

func TestImportCorpusMissingDataFile(t *testing.T) {
	store := newTestStore(t)

	// Registry corpus, but the data dir is empty.
	_, err := ImportCorpus(store, t.TempDir(), "subtitles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data file not found")
}
