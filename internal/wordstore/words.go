package wordstore

import (
	"database/sql"
	"fmt"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// ListWords returns every canonical word with its stored combined rank.
func (ws *WordStoreImpl) ListWords() ([]schema.Word, error) {
	query := fmt.Sprintf("SELECT id, token, language_code, combined_rank FROM %s ORDER BY id", wordsTable)

	rows, err := ws.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Word
	for rows.Next() {
		var w schema.Word
		var rank sql.NullInt64
		if err := rows.Scan(&w.ID, &w.Token, &w.LanguageCode, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		if rank.Valid {
			v := int(rank.Int64)
			w.CombinedRank = &v
		}
		results = append(results, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating words: %w", err)
	}
	return results, nil
}

// UpdateCombinedRanks writes combined ranks back onto word rows, committing
// every schema.CommitBatchSize updates. Recomputation is deterministic, so
// a failure mid-way is safe to resume by re-running the aggregation.
func (ws *WordStoreImpl) UpdateCombinedRanks(updates []contract.RankUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	query := ws.rebind(fmt.Sprintf("UPDATE %s SET combined_rank = ? WHERE token = ?", wordsTable))

	tx, err := ws.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin rank update: %w", err)
	}

	updated := 0
	for _, u := range updates {
		if _, err := tx.Exec(query, u.Rank, u.Word); err != nil {
			_ = tx.Rollback()
			return updated, fmt.Errorf("failed to update rank for %q: %w", u.Word, err)
		}
		updated++
		if updated%schema.CommitBatchSize == 0 {
			if err := tx.Commit(); err != nil {
				return updated, fmt.Errorf("failed to commit rank update batch: %w", err)
			}
			if tx, err = ws.db.Begin(); err != nil {
				return updated, fmt.Errorf("failed to begin rank update: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return updated, fmt.Errorf("failed to commit rank updates: %w", err)
	}
	return updated, nil
}
