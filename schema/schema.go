// Package schema has configs, models and shared types for all parts of lexirank.
package schema

import "time"

// Corpus is a named word-frequency source stored in the database.
type Corpus struct {
	ID             int64     // Auto-assigned primary key
	Name           string    // Unique corpus name
	Description    string    // Human-readable description
	CorpusWeight   float64   // Weight in aggregation (0.0 excludes without deleting data)
	MaxUnknownRank *int      // Optional cap on the substituted rank for absent words
	Enabled        bool      // Whether the corpus participates in aggregation
	AddedAt        time.Time // When the corpus row was created
	UpdatedAt      time.Time // When the corpus row was last modified
}

// Word is a canonical word row that observations attach to.
// CombinedRank is the only field the aggregator writes back.
type Word struct {
	ID           int64  // Auto-assigned primary key
	Token        string // Case-normalized word text, unique
	LanguageCode string // Language tag recorded at import time (e.g. "en", "lt")
	CombinedRank *int   // Derived combined frequency rank, nil until aggregated
}

// Observation is one (word, corpus) frequency fact.
// Rank and Frequency are both optional, but at least one is set on import.
type Observation struct {
	WordID    int64
	CorpusID  int64
	Rank      *int     // 1-based, lower is more frequent
	Frequency *float64 // Raw measured frequency, non-negative
}

// WordEntry is a normalized entry produced by parsing a corpus file,
// before it is written to the store.
type WordEntry struct {
	Word      string
	Rank      *int
	Frequency *float64
}

// RankResult is the per-word output of a rank aggregation run.
type RankResult struct {
	Word         string         `json:"word"`
	CorpusRanks  map[string]int `json:"corpus_ranks"` // corpus name -> resolved (gap-filled) rank
	HarmonicMean float64        `json:"harmonic_mean"`
	CombinedRank int            `json:"combined_rank"` // 1-based dense rank by ascending harmonic mean
	ZScore       float64        `json:"z_score"`
	IsOutlier    bool           `json:"is_outlier"`
	CurrentRank  *int           `json:"-"` // stored combined rank before this run, for change detection
}

// SyncResult reports the outcome of reconciling static corpus configs
// into the store.
type SyncResult struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors,omitempty"`
	Added    int      `json:"added"`
	Updated  int      `json:"updated"`
	Disabled int      `json:"disabled"`
}

// ImportStats reports the outcome of importing one corpus file.
type ImportStats struct {
	Corpus          string `json:"corpus"`
	Imported        int    `json:"imported"`
	Total           int    `json:"total"`
	SkippedNumerals int    `json:"skipped_numerals"`
	MergedVariants  int    `json:"merged_variants"`
	RanksDerived    int    `json:"ranks_derived"`
	CapReached      bool   `json:"cap_reached"`
}

// CorpusStatus is a read-only summary row for the corpora command.
type CorpusStatus struct {
	Corpus
	WordCount int // Number of observations in this corpus
}

// CorrelationResult holds the Spearman correlation between one pair of corpora.
type CorrelationResult struct {
	CorpusA     string  `json:"corpus_a"`
	CorpusB     string  `json:"corpus_b"`
	Correlation float64 `json:"correlation"`
	SampleSize  int     `json:"sample_size"`
}
