package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		rank     int
		expected string
	}{
		{"head of the list", 1, CoreValue},
		{"core boundary", 1000, CoreValue},
		{"common", 1001, CommonValue},
		{"extended", 12500, ExtendedValue},
		{"rare tail", 12501, RareValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.rank))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		rank  int
		label string
	}{
		{"core", 10, CoreValue},
		{"common", 2000, CommonValue},
		{"extended", 8000, ExtendedValue},
		{"rare", 50000, RareValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Should contain the plain label regardless of color codes
			assert.Contains(t, GetColorLabel(tt.rank), tt.label)
		})
	}
}

func TestGetOutlierFlag(t *testing.T) {
	assert.Empty(t, GetOutlierFlag(false, false))
	assert.Empty(t, GetOutlierFlag(false, true))
	assert.Equal(t, "outlier", GetOutlierFlag(true, false))
	assert.Contains(t, GetOutlierFlag(true, true), "outlier")
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"yes", true},
		{"TRUE", true},
		{"1", true},
		{"no", false},
		{"False", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestTruncateWord(t *testing.T) {
	assert.Equal(t, "short", TruncateWord("short", 10))
	assert.Equal(t, "exactlyten", TruncateWord("exactlyten", 10))
	assert.Equal(t, "enc", TruncateWord("encyclopedia", 3))
	assert.Equal(t, "encyclo...", TruncateWord("encyclopedias", 10))
}
