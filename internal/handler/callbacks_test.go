package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "section_0",
			expected: "section_0",
		},
		{
			name:     "string with whitespace",
			input:    "  section_0  ",
			expected: "section_0",
		},
		{
			name:     "string with newline",
			input:    "section\n_0",
			expected: "section_0",
		},
		{
			name:     "telebot form feed prefix",
			input:    "\fsection_0",
			expected: "section_0",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "file\x00_1\x01",
			expected: "file_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitToken(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		expectedPrefix string
		expectedIndex  int
		expectedOK     bool
	}{
		{
			name:           "section token",
			token:          "section_0",
			expectedPrefix: "section",
			expectedIndex:  0,
			expectedOK:     true,
		},
		{
			name:           "file token with large index",
			token:          "file_42",
			expectedPrefix: "file",
			expectedIndex:  42,
			expectedOK:     true,
		},
		{
			name:       "back token has no numeric tail",
			token:      "back_to_sections",
			expectedOK: false,
		},
		{
			name:       "missing index",
			token:      "section_",
			expectedOK: false,
		},
		{
			name:       "no separator",
			token:      "section",
			expectedOK: false,
		},
		{
			name:       "empty token",
			token:      "",
			expectedOK: false,
		},
		{
			name:       "non-numeric index",
			token:      "section_abc",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, index, ok := splitToken(tt.token)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedPrefix, prefix)
				assert.Equal(t, tt.expectedIndex, index)
			}
		})
	}
}
