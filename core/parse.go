package core

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/mpetrulis/lexirank/schema"
)

// sourceShape is the closed set of corpus file shapes. Each shape has one
// parser, so shape handling stays exhaustive instead of relying on runtime
// inspection of decoded JSON.
type sourceShape int

const (
	shapeList            sourceShape = iota // flat JSON list; position+1 = rank
	shapeFlatMap                            // flat JSON word->number map; meaning resolved by value type
	shapeNestedFrequency                    // JSON object with a global_word_frequency sub-object
	shapeTable                              // tab-delimited table; line order = rank
)

// nestedFrequencyKey marks the JSON shape with an explicit frequency table.
const nestedFrequencyKey = "global_word_frequency"

// detectSampleSize is how many values the auto-detection heuristic inspects.
const detectSampleSize = 100

// rawPair is one pre-normalization (word, value) pair. For list and table
// shapes the value is already a rank.
type rawPair struct {
	Word  string
	Value float64
}

// detection is the explicit three-way result of value-type classification.
// Ambiguous is surfaced to the caller rather than silently defaulted, so a
// mis-shaped corpus is visible in the logs.
type detection int

const (
	detectedRank detection = iota
	detectedFrequency
	detectedAmbiguous
)

// errUnsupportedShape marks file type/shape combinations the parser does
// not recognize. Batch imports treat it as a zero-imported result so one
// bad file does not stop the loop.
type errUnsupportedShape struct {
	path   string
	reason string
}

func (e *errUnsupportedShape) Error() string {
	return fmt.Sprintf("unsupported corpus file shape in %s: %s", e.path, e.reason)
}

// IsUnsupportedShape reports whether err is an unsupported-shape condition.
func IsUnsupportedShape(err error) bool {
	_, ok := err.(*errUnsupportedShape)
	return ok
}

// parseCorpusFile reads the file at path and returns its raw word/value
// pairs together with the shape that produced them.
func parseCorpusFile(path string, fileType schema.FileType) ([]rawPair, sourceShape, error) {
	switch fileType {
	case schema.JSONFile:
		return parseJSONFile(path)
	case schema.TSVFile:
		return parseTableFile(path)
	default:
		return nil, 0, &errUnsupportedShape{path: path, reason: fmt.Sprintf("unknown file type %q", fileType)}
	}
}

// parseJSONFile dispatches on the decoded JSON shape: flat list, flat map
// or a map carrying a nested frequency table.
func parseJSONFile(path string) ([]rawPair, sourceShape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		pairs := make([]rawPair, len(asList))
		for i, word := range asList {
			pairs[i] = rawPair{Word: word, Value: float64(i + 1)}
		}
		return pairs, shapeList, nil
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &asMap); err != nil {
		return nil, 0, &errUnsupportedShape{path: path, reason: "not a JSON list or object"}
	}

	if nested, ok := asMap[nestedFrequencyKey]; ok {
		var freqs map[string]float64
		if err := json.Unmarshal(nested, &freqs); err != nil {
			return nil, 0, &errUnsupportedShape{path: path, reason: nestedFrequencyKey + " is not a word->number object"}
		}
		return mapToPairs(freqs), shapeNestedFrequency, nil
	}

	flat := make(map[string]float64, len(asMap))
	for word, raw := range asMap {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, 0, &errUnsupportedShape{path: path, reason: fmt.Sprintf("value for %q is not numeric", word)}
		}
		flat[word] = v
	}
	return mapToPairs(flat), shapeFlatMap, nil
}

// parseTableFile reads a two-column delimited table: word in the first
// column, line order implies rank. Short rows are skipped.
func parseTableFile(path string) ([]rawPair, sourceShape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var pairs []rawPair
	scanner := bufio.NewScanner(f)

	// First line is the header.
	if !scanner.Scan() {
		return nil, shapeTable, scanner.Err()
	}

	row := 0
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 {
			continue
		}
		row++
		pairs = append(pairs, rawPair{Word: fields[0], Value: float64(row)})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return pairs, shapeTable, nil
}

// mapToPairs flattens a word->value map into pairs with a fixed iteration
// order, so detection samples and merge order are reproducible.
func mapToPairs(m map[string]float64) []rawPair {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)

	pairs := make([]rawPair, len(words))
	for i, w := range words {
		pairs[i] = rawPair{Word: w, Value: m[w]}
	}
	return pairs
}

// classifyValues samples up to detectSampleSize values and classifies them
// as ranks or frequencies. Normalized frequency tables have fractional
// values, small magnitudes and sum close to 1.0; rank tables are integral.
// Anything else is Ambiguous and left for the caller to resolve.
func classifyValues(pairs []rawPair) detection {
	n := min(len(pairs), detectSampleSize)
	if n == 0 {
		return detectedAmbiguous
	}

	var sum float64
	hasDecimals := false
	hasSmallValues := false
	allIntegral := true

	for _, p := range pairs[:n] {
		v := p.Value
		sum += v
		if v != math.Trunc(v) {
			hasDecimals = true
			allIntegral = false
		}
		if v > 0 && v < 0.1 {
			hasSmallValues = true
		}
	}

	if hasDecimals && hasSmallValues && sum > 0.8 && sum < 1.2 {
		return detectedFrequency
	}
	if allIntegral {
		return detectedRank
	}
	return detectedAmbiguous
}

// resolveValueType decides how numeric values are interpreted for a given
// shape. List and table shapes are positional, so they are always ranks;
// the nested frequency shape is always frequencies. Only the flat map is
// ambiguous, resolved by the configured value type or by detection.
func resolveValueType(shape sourceShape, configured schema.ValueType, pairs []rawPair) (schema.ValueType, detection) {
	switch shape {
	case shapeList, shapeTable:
		return schema.RankValues, detectedRank
	case shapeNestedFrequency:
		return schema.FrequencyValues, detectedFrequency
	}

	if configured != schema.AutoValues {
		return configured, detectedRank
	}

	switch d := classifyValues(pairs); d {
	case detectedFrequency:
		return schema.FrequencyValues, d
	case detectedRank:
		return schema.RankValues, d
	default:
		// Ambiguous data defaults to rank, but the caller logs a warning.
		return schema.RankValues, detectedAmbiguous
	}
}

// normalizeEntries lowercases words, drops any containing a numeral, and
// merges case-variant duplicates: for ranks the smaller (better) value
// wins, for frequencies the larger. Returns the normalized entries plus
// counts of numeral-skipped and merged pairs.
func normalizeEntries(pairs []rawPair, valueType schema.ValueType) ([]schema.WordEntry, int, int) {
	byWord := make(map[string]*schema.WordEntry, len(pairs))
	var order []string
	skippedNumerals := 0
	merged := 0

	for _, p := range pairs {
		word := strings.ToLower(p.Word)
		if strings.ContainsFunc(word, unicode.IsDigit) {
			skippedNumerals++
			continue
		}

		var rank *int
		var freq *float64
		if valueType == schema.RankValues {
			r := int(math.Round(p.Value))
			rank = &r
		} else {
			f := p.Value
			freq = &f
		}

		existing, ok := byWord[word]
		if !ok {
			byWord[word] = &schema.WordEntry{Word: word, Rank: rank, Frequency: freq}
			order = append(order, word)
			continue
		}

		merged++
		if rank != nil && (existing.Rank == nil || *rank < *existing.Rank) {
			existing.Rank = rank
		}
		if freq != nil && (existing.Frequency == nil || *freq > *existing.Frequency) {
			existing.Frequency = freq
		}
	}

	entries := make([]schema.WordEntry, len(order))
	for i, w := range order {
		entries[i] = *byWord[w]
	}
	return entries, skippedNumerals, merged
}
