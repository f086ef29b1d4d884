package schema

// CorpusConfig is the static, code-defined configuration for one corpus.
// The registry below is reconciled into the corpora table on sync.
type CorpusConfig struct {
	Name           string    // Unique corpus name
	Description    string    // Human-readable description
	FilePath       string    // Data file name, resolved against the data directory
	FileType       FileType  // Structural shape of the source file
	ValueType      ValueType // How numeric values are interpreted
	LanguageCode   string    // Language tag recorded on imported words
	MaxWords       int       // Import cap
	CorpusWeight   float64   // Aggregation weight (0.0 excludes, 1.0 full weight)
	MaxUnknownRank *int      // Optional cap on the substituted rank for absent words
	Enabled        bool
}

// EffectiveUnknownRank calculates the rank substituted for words absent
// from this corpus. The substitute must never make a word look more common
// than the corpus's own worst real entry, so it is floored at the corpus
// size, and capped by MaxUnknownRank when that is set.
func (c *CorpusConfig) EffectiveUnknownRank(corpusSize, defaultUnknownRank int) int {
	return effectiveUnknownRank(c.MaxUnknownRank, corpusSize, defaultUnknownRank)
}

// EffectiveUnknownRank is the stored-corpus counterpart of the config
// method above; the aggregator applies it per corpus.
func (c *Corpus) EffectiveUnknownRank(corpusSize, defaultUnknownRank int) int {
	return effectiveUnknownRank(c.MaxUnknownRank, corpusSize, defaultUnknownRank)
}

func effectiveUnknownRank(maxUnknownRank *int, corpusSize, defaultUnknownRank int) int {
	base := max(corpusSize, defaultUnknownRank)
	if maxUnknownRank != nil {
		return min(*maxUnknownRank, base)
	}
	return base
}

// intPtr is a small helper for optional integer config fields.
func intPtr(v int) *int { return &v }

// CorpusRegistry is the static list of corpus configurations.
var CorpusRegistry = []CorpusConfig{
	{
		Name:           "19th_books",
		Description:    "Word frequency data from 19th century books",
		FilePath:       "19th_books.json",
		FileType:       JSONFile,
		ValueType:      AutoValues,
		LanguageCode:   "en",
		MaxWords:       4000,
		CorpusWeight:   0.8,
		MaxUnknownRank: intPtr(10000),
		Enabled:        true,
	},
	{
		Name:           "20th_books",
		Description:    "Word frequency data from 20th century books",
		FilePath:       "20th_books.json",
		FileType:       JSONFile,
		ValueType:      AutoValues,
		LanguageCode:   "en",
		MaxWords:       4000,
		CorpusWeight:   0.9,
		MaxUnknownRank: intPtr(10000),
		Enabled:        true,
	},
	{
		Name:           "subtitles",
		Description:    "Word frequency data from movie and TV subtitles",
		FilePath:       "subtlex.txt",
		FileType:       TSVFile,
		ValueType:      AutoValues,
		LanguageCode:   "en",
		MaxWords:       7500,
		CorpusWeight:   1.0,
		MaxUnknownRank: intPtr(12000),
		Enabled:        true,
	},
	{
		Name:           "wiki_vital",
		Description:    "Word frequency data from Wikipedia vital articles",
		FilePath:       "wiki_vital.json",
		FileType:       JSONFile,
		ValueType:      FrequencyValues,
		LanguageCode:   "en",
		MaxWords:       6000,
		CorpusWeight:   1.0,
		MaxUnknownRank: intPtr(12000),
		Enabled:        true,
	},
	{
		Name:           "cooking",
		Description:    "Word frequency data from cookbooks",
		FilePath:       "cooking_wordfreq.json",
		FileType:       JSONFile,
		ValueType:      FrequencyValues,
		LanguageCode:   "en",
		MaxWords:       1000,
		CorpusWeight:   0.7,
		MaxUnknownRank: intPtr(1500),
		Enabled:        true,
	},
}

// GetCorpusConfig returns the configuration for a corpus by name, or nil.
func GetCorpusConfig(name string) *CorpusConfig {
	for i := range CorpusRegistry {
		if CorpusRegistry[i].Name == name {
			return &CorpusRegistry[i]
		}
	}
	return nil
}

// EnabledCorpusConfigs returns all enabled corpus configurations.
func EnabledCorpusConfigs() []CorpusConfig {
	var out []CorpusConfig
	for _, c := range CorpusRegistry {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out
}
