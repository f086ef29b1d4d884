package core

import (
	"fmt"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// ValidateCorpusConfigs checks the static corpus registry and returns
// every violation found, not just the first, so a broken registry is
// fixable in one pass.
func ValidateCorpusConfigs(configs []schema.CorpusConfig) []string {
	var errors []string
	names := make(map[string]struct{}, len(configs))

	for _, cfg := range configs {
		if _, dup := names[cfg.Name]; dup {
			errors = append(errors, fmt.Sprintf("duplicate corpus name: %s", cfg.Name))
		}
		names[cfg.Name] = struct{}{}

		if cfg.CorpusWeight < 0.0 || cfg.CorpusWeight > 1.0 {
			errors = append(errors, fmt.Sprintf("invalid corpus_weight for %s: %v (must be 0.0-1.0)", cfg.Name, cfg.CorpusWeight))
		}

		if cfg.MaxUnknownRank != nil && *cfg.MaxUnknownRank <= 0 {
			errors = append(errors, fmt.Sprintf("invalid max_unknown_rank for %s: %d (must be positive)", cfg.Name, *cfg.MaxUnknownRank))
		}
	}
	return errors
}

// SyncCorpusConfigs validates the static registry and reconciles it into
// the store. Validation failures abort before any database mutation; a
// persistence failure rolls back atomically inside the store.
func SyncCorpusConfigs(store contract.WordStore, configs []schema.CorpusConfig) schema.SyncResult {
	if validationErrors := ValidateCorpusConfigs(configs); len(validationErrors) > 0 {
		return schema.SyncResult{Errors: validationErrors}
	}

	result, err := store.SyncCorpora(configs)
	if err != nil {
		contract.LogWarn("corpus sync failed", err)
	}
	return result
}
