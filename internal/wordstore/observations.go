package wordstore

import (
	"database/sql"
	"fmt"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// ImportObservations upserts normalized entries for one corpus. Word rows
// are get-or-created by token. An upsert never clobbers a stored value
// with null: rank-only data leaves frequencies intact and vice versa.
// Commits happen every schema.CommitBatchSize records so a huge corpus
// never holds one giant transaction; any error rolls back the in-flight
// batch and propagates.
func (ws *WordStoreImpl) ImportObservations(corpusID int64, languageCode string, entries []schema.WordEntry, maxWords int) (int, bool, error) {
	insertWord := ws.rebind(ws.insertWordQuery())
	selectWord := ws.rebind(fmt.Sprintf("SELECT id FROM %s WHERE token = ?", wordsTable))
	upsertObs := ws.rebind(ws.upsertObservationQuery())

	tx, err := ws.db.Begin()
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin import transaction: %w", err)
	}

	imported := 0
	capReached := false

	for _, entry := range entries {
		if maxWords > 0 && imported >= maxWords {
			capReached = true
			break
		}

		if _, err := tx.Exec(insertWord, entry.Word, languageCode); err != nil {
			_ = tx.Rollback()
			return imported, false, fmt.Errorf("failed to insert word %q: %w", entry.Word, err)
		}
		var wordID int64
		if err := tx.QueryRow(selectWord, entry.Word).Scan(&wordID); err != nil {
			_ = tx.Rollback()
			return imported, false, fmt.Errorf("failed to look up word %q: %w", entry.Word, err)
		}

		if _, err := tx.Exec(upsertObs, wordID, corpusID, nullableInt(entry.Rank), nullableFloat(entry.Frequency)); err != nil {
			_ = tx.Rollback()
			return imported, false, fmt.Errorf("failed to upsert observation for %q: %w", entry.Word, err)
		}
		imported++

		if imported%schema.CommitBatchSize == 0 {
			if err := tx.Commit(); err != nil {
				return imported, false, fmt.Errorf("failed to commit import batch: %w", err)
			}
			if tx, err = ws.db.Begin(); err != nil {
				return imported, false, fmt.Errorf("failed to begin import transaction: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return imported, false, fmt.Errorf("failed to commit import: %w", err)
	}
	return imported, capReached, nil
}

// insertWordQuery is a get-or-create insert: existing tokens are left alone.
func (ws *WordStoreImpl) insertWordQuery() string {
	if ws.backend == schema.MySQLBackend {
		return fmt.Sprintf("INSERT IGNORE INTO %s (token, language_code) VALUES (?, ?)", wordsTable)
	}
	return fmt.Sprintf("INSERT INTO %s (token, language_code) VALUES (?, ?) ON CONFLICT (token) DO NOTHING", wordsTable)
}

// upsertObservationQuery merges a new observation into an existing row,
// keeping stored values where the incoming ones are null.
func (ws *WordStoreImpl) upsertObservationQuery() string {
	if ws.backend == schema.MySQLBackend {
		return fmt.Sprintf(`INSERT INTO %s (word_id, corpus_id, word_rank, frequency) VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				word_rank = COALESCE(VALUES(word_rank), word_rank),
				frequency = COALESCE(VALUES(frequency), frequency)`, observationsTable)
	}
	return fmt.Sprintf(`INSERT INTO %s (word_id, corpus_id, word_rank, frequency) VALUES (?, ?, ?, ?)
		ON CONFLICT (word_id, corpus_id) DO UPDATE SET
			word_rank = COALESCE(excluded.word_rank, %s.word_rank),
			frequency = COALESCE(excluded.frequency, %s.frequency)`, observationsTable, observationsTable, observationsTable)
}

// DeriveRanksFromFrequencies assigns dense 1-based ranks to every
// observation in the corpus with a non-null frequency, ordered by
// descending frequency. Frequency-only corpora end up with both fields
// populated.
func (ws *WordStoreImpl) DeriveRanksFromFrequencies(corpusID int64) (int, error) {
	query := ws.rebind(fmt.Sprintf(`SELECT word_id FROM %s
		WHERE corpus_id = ? AND frequency IS NOT NULL
		ORDER BY frequency DESC`, observationsTable))

	rows, err := ws.db.Query(query, corpusID)
	if err != nil {
		return 0, fmt.Errorf("failed to query frequency observations: %w", err)
	}
	var wordIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("failed to scan observation: %w", err)
		}
		wordIDs = append(wordIDs, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("error iterating observations: %w", err)
	}
	_ = rows.Close()

	update := ws.rebind(fmt.Sprintf("UPDATE %s SET word_rank = ? WHERE corpus_id = ? AND word_id = ?", observationsTable))

	tx, err := ws.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin rank derivation: %w", err)
	}
	for i, wordID := range wordIDs {
		if _, err := tx.Exec(update, i+1, corpusID, wordID); err != nil {
			_ = tx.Rollback()
			return i, fmt.Errorf("failed to derive rank: %w", err)
		}
		if (i+1)%schema.CommitBatchSize == 0 {
			if err := tx.Commit(); err != nil {
				return i + 1, fmt.Errorf("failed to commit rank batch: %w", err)
			}
			if tx, err = ws.db.Begin(); err != nil {
				return i + 1, fmt.Errorf("failed to begin rank derivation: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return len(wordIDs), fmt.Errorf("failed to commit derived ranks: %w", err)
	}
	return len(wordIDs), nil
}

// LoadObservations returns every observation for the given corpora, joined
// with word tokens, for in-memory aggregation.
func (ws *WordStoreImpl) LoadObservations(corpusIDs []int64) ([]contract.ObservationRow, error) {
	if len(corpusIDs) == 0 {
		return nil, nil
	}

	query := ws.rebind(fmt.Sprintf(`SELECT w.token, o.corpus_id, o.word_rank
		FROM %s o JOIN %s w ON w.id = o.word_id
		WHERE o.corpus_id IN (%s)`, observationsTable, wordsTable, inPlaceholders(len(corpusIDs))))

	args := make([]any, len(corpusIDs))
	for i, id := range corpusIDs {
		args[i] = id
	}

	rows, err := ws.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []contract.ObservationRow
	for rows.Next() {
		var row contract.ObservationRow
		var rank sql.NullInt64
		if err := rows.Scan(&row.Word, &row.CorpusID, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		if rank.Valid {
			v := int(rank.Int64)
			row.Rank = &v
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating observations: %w", err)
	}
	return results, nil
}

// nullableFloat converts an optional float to a driver-friendly value.
func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
