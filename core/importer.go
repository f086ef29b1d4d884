package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
)

// ImportParams describes one corpus file import.
type ImportParams struct {
	FilePath     string
	CorpusName   string
	Description  string // Used only if the corpus has to be created
	LanguageCode string
	FileType     schema.FileType
	ValueType    schema.ValueType
	MaxWords     int // <= 0 means no cap
}

// ImportFrequencyData ingests one corpus file into the word store.
//
// The corpus is looked up by name and created with a permissive default
// (weight 1.0, enabled) when genuinely absent, so ad-hoc one-off corpora
// can be imported without touching the static registry. Unsupported file
// shapes degrade to a zero-imported result instead of an error, which
// lets batch imports continue past one bad file; database failures roll
// back the in-flight batch and propagate.
func ImportFrequencyData(store contract.WordStore, p ImportParams) (schema.ImportStats, error) {
	stats := schema.ImportStats{Corpus: p.CorpusName}

	corpus, err := store.GetCorpus(p.CorpusName)
	if err != nil {
		return stats, err
	}
	if corpus == nil {
		description := p.Description
		if description == "" {
			description = "Corpus: " + p.CorpusName
		}
		corpus = &schema.Corpus{
			Name:         p.CorpusName,
			Description:  description,
			CorpusWeight: 1.0,
			Enabled:      true,
		}
		if err := store.CreateCorpus(corpus); err != nil {
			return stats, err
		}
		fmt.Printf("Created corpus %q: %s\n", p.CorpusName, description)
	} else if !corpus.Enabled {
		contract.LogWarn(fmt.Sprintf("corpus %q is disabled in configuration", p.CorpusName), nil)
	}

	pairs, shape, err := parseCorpusFile(p.FilePath, p.FileType)
	if err != nil {
		if IsUnsupportedShape(err) {
			contract.LogWarn("skipping corpus file", err)
			return stats, nil
		}
		return stats, err
	}

	valueType, det := resolveValueType(shape, p.ValueType, pairs)
	if det == detectedAmbiguous {
		contract.LogWarn(fmt.Sprintf("could not auto-detect value type for %q, defaulting to rank", p.CorpusName), nil)
	}

	entries, skippedNumerals, merged := normalizeEntries(pairs, valueType)
	stats.Total = len(entries)
	stats.SkippedNumerals = skippedNumerals
	stats.MergedVariants = merged

	imported, capReached, err := store.ImportObservations(corpus.ID, p.LanguageCode, entries, p.MaxWords)
	if err != nil {
		return stats, err
	}
	stats.Imported = imported
	stats.CapReached = capReached
	if capReached {
		fmt.Printf("Reached max words limit of %d for corpus %q\n", p.MaxWords, p.CorpusName)
	}

	// Frequency-only corpora still need ranks for aggregation: derive
	// them by descending frequency after the upserts have committed.
	if valueType == schema.FrequencyValues {
		derived, err := store.DeriveRanksFromFrequencies(corpus.ID)
		if err != nil {
			return stats, err
		}
		stats.RanksDerived = derived
	}

	return stats, nil
}

// ImportCorpus imports one corpus from the static registry, resolving its
// data file against dataDir.
func ImportCorpus(store contract.WordStore, dataDir, corpusName string) (schema.ImportStats, error) {
	cfg := schema.GetCorpusConfig(corpusName)
	if cfg == nil {
		return schema.ImportStats{Corpus: corpusName}, fmt.Errorf("corpus %q not found in configuration", corpusName)
	}

	fullPath := filepath.Join(dataDir, cfg.FilePath)
	if _, err := os.Stat(fullPath); err != nil {
		return schema.ImportStats{Corpus: corpusName}, fmt.Errorf("data file not found: %s", fullPath)
	}

	return ImportFrequencyData(store, ImportParams{
		FilePath:     fullPath,
		CorpusName:   cfg.Name,
		Description:  cfg.Description,
		LanguageCode: cfg.LanguageCode,
		FileType:     cfg.FileType,
		ValueType:    cfg.ValueType,
		MaxWords:     cfg.MaxWords,
	})
}

// ImportAllCorpora imports every enabled corpus from the static registry.
// One failing corpus is logged and skipped so the rest still import.
func ImportAllCorpora(store contract.WordStore, dataDir string) map[string]schema.ImportStats {
	results := make(map[string]schema.ImportStats)
	for _, cfg := range schema.EnabledCorpusConfigs() {
		stats, err := ImportCorpus(store, dataDir, cfg.Name)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("failed to load corpus %q", cfg.Name), err)
		}
		results[cfg.Name] = stats
	}
	return results
}
