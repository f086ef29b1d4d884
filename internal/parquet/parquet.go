// Package parquet provides data structures and functions for exporting
// combined word rankings to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mpetrulis/lexirank/schema"
	"github.com/parquet-go/parquet-go"
)

// WordRank represents one word in the combined ranking. Per-corpus ranks are
// carried as a JSON-encoded string column because the corpus set varies per
// run and Parquet schemas are fixed.
type WordRank struct {
	// CombinedRank is the word's position in the combined ranking
	CombinedRank int32 `parquet:"combined_rank,snappy"`

	// Word is the normalized token
	Word string `parquet:"word,snappy"`

	// HarmonicMean is the combined score the ranking is ordered by
	HarmonicMean float64 `parquet:"harmonic_mean,snappy"`

	// ZScore is the log-space z-score of the harmonic mean
	ZScore float64 `parquet:"z_score,snappy"`

	// IsOutlier marks words beyond the configured z-score threshold
	IsOutlier bool `parquet:"is_outlier,snappy"`

	// CorpusRanks is the JSON-encoded per-corpus rank map (nullable)
	CorpusRanks *string `parquet:"corpus_ranks,optional,snappy"`
}

// FromRankResults converts rank results into Parquet records.
func FromRankResults(results []schema.RankResult) ([]WordRank, error) {
	records := make([]WordRank, len(results))
	for i, r := range results {
		rec := WordRank{
			CombinedRank: int32(r.CombinedRank),
			Word:         r.Word,
			HarmonicMean: r.HarmonicMean,
			ZScore:       r.ZScore,
			IsOutlier:    r.IsOutlier,
		}
		if len(r.CorpusRanks) > 0 {
			encoded, err := json.Marshal(r.CorpusRanks)
			if err != nil {
				return nil, fmt.Errorf("failed to encode corpus ranks for %q: %w", r.Word, err)
			}
			s := string(encoded)
			rec.CorpusRanks = &s
		}
		records[i] = rec
	}
	return records, nil
}

// WriteWordRanksParquet writes a slice of WordRank structs to a Parquet file.
func WriteWordRanksParquet(data []WordRank, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the WordRank struct tags
	writer := parquet.NewGenericWriter[WordRank](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
