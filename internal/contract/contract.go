// Package contract defines the interfaces and configuration shared between
// the core engine, the persistence layer and the CLI.
package contract

import "github.com/mpetrulis/lexirank/schema"

// ObservationRow is one (word, corpus) rank fact loaded for aggregation.
// Frequency values are not loaded here; only ranks matter to the aggregator.
type ObservationRow struct {
	Word     string
	CorpusID int64
	Rank     *int
}

// RankUpdate is one pending combined-rank write-back.
type RankUpdate struct {
	Word string
	Rank int
}

// WordStore is the persistence boundary for corpora, words and
// per-corpus observations. Implementations are transactional where the
// operation demands it: SyncCorpora is all-or-nothing, imports and rank
// updates commit in bounded batches.
type WordStore interface {
	// ListCorpora returns corpora, optionally restricted to enabled ones.
	ListCorpora(enabledOnly bool) ([]schema.Corpus, error)

	// GetCorpus returns the corpus with the given name, or nil if absent.
	GetCorpus(name string) (*schema.Corpus, error)

	// CreateCorpus inserts a new corpus row and fills in its ID.
	CreateCorpus(c *schema.Corpus) error

	// SyncCorpora reconciles the static configs into the corpora table
	// atomically: add missing, update changed, disable absent.
	SyncCorpora(configs []schema.CorpusConfig) (schema.SyncResult, error)

	// CorpusSize returns the number of observations in a corpus.
	CorpusSize(corpusID int64) (int, error)

	// CorpusStatuses returns all corpora with their observation counts.
	CorpusStatuses() ([]schema.CorpusStatus, error)

	// ImportObservations upserts normalized entries for one corpus,
	// get-or-creating word rows as needed. Commits every
	// schema.CommitBatchSize records and stops once maxWords records are
	// written (maxWords <= 0 means no cap). Returns the imported count
	// and whether the cap was reached.
	ImportObservations(corpusID int64, languageCode string, entries []schema.WordEntry, maxWords int) (int, bool, error)

	// DeriveRanksFromFrequencies assigns dense 1-based ranks to every
	// observation in the corpus with a non-null frequency, ordered by
	// descending frequency. Returns the number of rows ranked.
	DeriveRanksFromFrequencies(corpusID int64) (int, error)

	// LoadObservations returns every observation for the given corpora.
	LoadObservations(corpusIDs []int64) ([]ObservationRow, error)

	// ListWords returns every canonical word with its stored combined rank.
	ListWords() ([]schema.Word, error)

	// UpdateCombinedRanks writes combined ranks back onto word rows,
	// committing in batches. Returns the number of rows updated.
	UpdateCombinedRanks(updates []RankUpdate) (int, error)

	// Close releases the underlying connection.
	Close() error
}
