package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Frequency band label constants.
const (
	CoreValue     = "Core"     // Core vocabulary
	CommonValue   = "Common"   // Common vocabulary
	ExtendedValue = "Extended" // Extended vocabulary
	RareValue     = "Rare"     // Rare vocabulary
)

// Frequency band boundaries by combined rank.
const (
	coreBandLimit     = 1000
	commonBandLimit   = 5000
	extendedBandLimit = 12500
)

// Color variables for console output.
var (
	CoreColor     = color.New(color.FgGreen, color.Bold) // everyday vocabulary head
	CommonColor   = color.New(color.FgCyan)              // broadly useful middle
	ExtendedColor = color.New(color.FgYellow)            // long-tail learner band
	RareColor     = color.New(color.FgMagenta)           // low-evidence words
	OutlierColor  = color.New(color.FgRed, color.Bold)   // statistical outliers
)

// GetPlainLabel returns a plain text frequency band for a combined rank.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(rank int) string {
	switch {
	case rank <= coreBandLimit:
		return CoreValue
	case rank <= commonBandLimit:
		return CommonValue
	case rank <= extendedBandLimit:
		return ExtendedValue
	default:
		return RareValue
	}
}

// GetColorLabel returns a colored frequency band for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(rank int) string {
	text := GetPlainLabel(rank)

	switch text {
	case CoreValue:
		return CoreColor.Sprint(text)
	case CommonValue:
		return CommonColor.Sprint(text)
	case ExtendedValue:
		return ExtendedColor.Sprint(text)
	default: // "Rare"
		return RareColor.Sprint(text)
	}
}

// GetOutlierFlag returns the flag text for the outlier column, colored for
// table output when colored is true.
func GetOutlierFlag(isOutlier, colored bool) string {
	if !isOutlier {
		return ""
	}
	if colored {
		return OutlierColor.Sprint("outlier")
	}
	return "outlier"
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateWord shortens overly long tokens for table display.
func TruncateWord(word string, maxWidth int) string {
	if len(word) <= maxWidth {
		return word
	}
	if maxWidth <= 3 {
		return word[:maxWidth]
	}
	return word[:maxWidth-3] + "..."
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for the word store.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".lexirank.db"
	}
	return filepath.Join(homeDir, ".lexirank.db")
}
