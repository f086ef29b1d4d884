package wordstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mpetrulis/lexirank/schema"
)

// scanCorpus reads one corpus row, handling per-backend timestamp storage.
func (ws *WordStoreImpl) scanCorpus(row interface{ Scan(...any) error }) (schema.Corpus, error) {
	var c schema.Corpus
	var maxUnknown sql.NullInt64
	var description sql.NullString

	if ws.backend == schema.SQLiteBackend {
		var addedStr, updatedStr string
		if err := row.Scan(&c.ID, &c.Name, &description, &c.CorpusWeight, &maxUnknown, &c.Enabled, &addedStr, &updatedStr); err != nil {
			return c, err
		}
		var err error
		if c.AddedAt, err = parseSQLiteTime(addedStr); err != nil {
			return c, fmt.Errorf("failed to parse added_at: %w", err)
		}
		if c.UpdatedAt, err = parseSQLiteTime(updatedStr); err != nil {
			return c, fmt.Errorf("failed to parse updated_at: %w", err)
		}
	} else {
		if err := row.Scan(&c.ID, &c.Name, &description, &c.CorpusWeight, &maxUnknown, &c.Enabled, &c.AddedAt, &c.UpdatedAt); err != nil {
			return c, err
		}
	}

	c.Description = description.String
	if maxUnknown.Valid {
		v := int(maxUnknown.Int64)
		c.MaxUnknownRank = &v
	}
	return c, nil
}

const corpusColumns = "id, name, description, corpus_weight, max_unknown_rank, enabled, added_at, updated_at"

// ListCorpora returns corpora, optionally restricted to enabled ones.
func (ws *WordStoreImpl) ListCorpora(enabledOnly bool) ([]schema.Corpus, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", corpusColumns, corporaTable)
	if enabledOnly {
		query += " WHERE enabled = " + ws.boolLiteral(true)
	}
	query += " ORDER BY id"

	rows, err := ws.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query corpora: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Corpus
	for rows.Next() {
		c, err := ws.scanCorpus(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan corpus: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating corpora: %w", err)
	}
	return results, nil
}

// GetCorpus returns the corpus with the given name, or nil if absent.
func (ws *WordStoreImpl) GetCorpus(name string) (*schema.Corpus, error) {
	query := ws.rebind(fmt.Sprintf("SELECT %s FROM %s WHERE name = ?", corpusColumns, corporaTable))
	c, err := ws.scanCorpus(ws.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get corpus %q: %w", name, err)
	}
	return &c, nil
}

// CreateCorpus inserts a new corpus row and fills in its ID.
func (ws *WordStoreImpl) CreateCorpus(c *schema.Corpus) error {
	now := time.Now().UTC()
	c.AddedAt = now
	c.UpdatedAt = now

	query := fmt.Sprintf(`INSERT INTO %s (name, description, corpus_weight, max_unknown_rank, enabled, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, corporaTable)
	args := []any{c.Name, c.Description, c.CorpusWeight, nullableInt(c.MaxUnknownRank), c.Enabled, ws.formatTime(now), ws.formatTime(now)}

	if ws.backend == schema.PostgreSQLBackend {
		query = ws.rebind(query) + " RETURNING id"
		if err := ws.db.QueryRow(query, args...).Scan(&c.ID); err != nil {
			return fmt.Errorf("failed to insert corpus %q: %w", c.Name, err)
		}
		return nil
	}

	result, err := ws.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert corpus %q: %w", c.Name, err)
	}
	c.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read corpus id: %w", err)
	}
	return nil
}

// SyncCorpora reconciles static corpus configs into the corpora table in a
// single transaction: add missing, update changed fields, disable corpora
// absent from the configs. A persistence failure rolls back everything.
func (ws *WordStoreImpl) SyncCorpora(configs []schema.CorpusConfig) (schema.SyncResult, error) {
	var result schema.SyncResult

	tx, err := ws.db.Begin()
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, fmt.Errorf("failed to begin sync transaction: %w", err)
	}

	fail := func(err error) (schema.SyncResult, error) {
		_ = tx.Rollback()
		result = schema.SyncResult{Errors: []string{err.Error()}}
		return result, err
	}

	// Load existing corpora inside the transaction.
	existing := make(map[string]schema.Corpus)
	query := fmt.Sprintf("SELECT %s FROM %s", corpusColumns, corporaTable)
	rows, err := tx.Query(query)
	if err != nil {
		return fail(fmt.Errorf("failed to query corpora: %w", err))
	}
	for rows.Next() {
		c, err := ws.scanCorpus(rows)
		if err != nil {
			_ = rows.Close()
			return fail(fmt.Errorf("failed to scan corpus: %w", err))
		}
		existing[c.Name] = c
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fail(fmt.Errorf("error iterating corpora: %w", err))
	}
	_ = rows.Close()

	now := ws.formatTime(time.Now().UTC())
	configNames := make(map[string]struct{}, len(configs))

	for _, cfg := range configs {
		configNames[cfg.Name] = struct{}{}

		cur, ok := existing[cfg.Name]
		if !ok {
			insert := ws.rebind(fmt.Sprintf(`INSERT INTO %s (name, description, corpus_weight, max_unknown_rank, enabled, added_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`, corporaTable))
			if _, err := tx.Exec(insert, cfg.Name, cfg.Description, cfg.CorpusWeight, nullableInt(cfg.MaxUnknownRank), cfg.Enabled, now, now); err != nil {
				return fail(fmt.Errorf("failed to add corpus %q: %w", cfg.Name, err))
			}
			result.Added++
			continue
		}

		if corpusMatchesConfig(cur, cfg) {
			continue
		}
		update := ws.rebind(fmt.Sprintf(`UPDATE %s SET description = ?, corpus_weight = ?, max_unknown_rank = ?, enabled = ?, updated_at = ?
			WHERE id = ?`, corporaTable))
		if _, err := tx.Exec(update, cfg.Description, cfg.CorpusWeight, nullableInt(cfg.MaxUnknownRank), cfg.Enabled, now, cur.ID); err != nil {
			return fail(fmt.Errorf("failed to update corpus %q: %w", cfg.Name, err))
		}
		result.Updated++
	}

	// Disable corpora no longer present in the config.
	for name, cur := range existing {
		if _, ok := configNames[name]; ok || !cur.Enabled {
			continue
		}
		disable := ws.rebind(fmt.Sprintf("UPDATE %s SET enabled = %s, updated_at = ? WHERE id = ?", corporaTable, ws.boolLiteral(false)))
		if _, err := tx.Exec(disable, now, cur.ID); err != nil {
			return fail(fmt.Errorf("failed to disable corpus %q: %w", name, err))
		}
		result.Disabled++
	}

	if err := tx.Commit(); err != nil {
		result = schema.SyncResult{Errors: []string{err.Error()}}
		return result, fmt.Errorf("failed to commit sync: %w", err)
	}

	result.Success = true
	return result, nil
}

// CorpusSize returns the number of observations in a corpus.
func (ws *WordStoreImpl) CorpusSize(corpusID int64) (int, error) {
	query := ws.rebind(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE corpus_id = ?", observationsTable))
	var count int
	if err := ws.db.QueryRow(query, corpusID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count observations for corpus %d: %w", corpusID, err)
	}
	return count, nil
}

// CorpusStatuses returns all corpora with their observation counts.
func (ws *WordStoreImpl) CorpusStatuses() ([]schema.CorpusStatus, error) {
	corpora, err := ws.ListCorpora(false)
	if err != nil {
		return nil, err
	}

	statuses := make([]schema.CorpusStatus, 0, len(corpora))
	for _, c := range corpora {
		size, err := ws.CorpusSize(c.ID)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, schema.CorpusStatus{Corpus: c, WordCount: size})
	}
	return statuses, nil
}

// corpusMatchesConfig reports whether the stored row already reflects the config.
func corpusMatchesConfig(cur schema.Corpus, cfg schema.CorpusConfig) bool {
	if cur.Description != cfg.Description || cur.CorpusWeight != cfg.CorpusWeight || cur.Enabled != cfg.Enabled {
		return false
	}
	switch {
	case cur.MaxUnknownRank == nil && cfg.MaxUnknownRank == nil:
		return true
	case cur.MaxUnknownRank == nil || cfg.MaxUnknownRank == nil:
		return false
	default:
		return *cur.MaxUnknownRank == *cfg.MaxUnknownRank
	}
}

// boolLiteral renders a boolean for inline SQL, since SQLite stores 0/1.
func (ws *WordStoreImpl) boolLiteral(v bool) string {
	if ws.backend == schema.SQLiteBackend {
		if v {
			return "1"
		}
		return "0"
	}
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// nullableInt converts an optional int to a driver-friendly value.
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
