package numutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanNumericString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "5000", "5000"},
		{"grouping commas", "1,23,456.78", "123456.78"},
		{"trailing period", "30.441.", "30.441"},
		{"multiple dots", "1.2.3", "1.23"},
		{"comma and trailing period", "5,000.", "5000"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanNumericString(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain integer", "5000", "5000", false},
		{"decimal with commas", "12,300.50", "12300.5", false},
		{"nav style trailing dot", "30.441.", "30.441", false},
		{"empty input", "", "", true},
		{"letters", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
