package deckfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoflash/memoflash/internal/deckfile"
)

func TestParse_CSV(t *testing.T) {
	input := "bonjour,hello\nmerci,thank you\n"

	entries, err := deckfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, deckfile.Entry{Front: "bonjour", Back: "hello"}, entries[0])
	assert.Equal(t, deckfile.Entry{Front: "merci", Back: "thank you"}, entries[1])
}

func TestParse_TSV(t *testing.T) {
	input := "bonjour\thello, hi\nmerci\tthank you\n"

	entries, err := deckfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "hello, hi", entries[0].Back, "commas inside TSV fields survive")
}

func TestParse_SkipsHeaderRow(t *testing.T) {
	input := "Front,Back\nbonjour,hello\n"

	entries, err := deckfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bonjour", entries[0].Front)
}

func TestParse_SkipsCommentsAndBlankLines(t *testing.T) {
	input := "# exported 2025-06-01\n\nbonjour,hello\n\nmerci,thanks\n"

	entries, err := deckfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestParse_QuotedFields(t *testing.T) {
	input := "\"to be, or not\",\"sein, oder nicht\"\n"

	entries, err := deckfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "to be, or not", entries[0].Front)
}

func TestParse_IgnoresExtraFields(t *testing.T) {
	input := "bonjour,hello,greetings-tag\n"

	entries, err := deckfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Back)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"only comments", "# nothing here\n"},
		{"single field record", "bonjour,hello\nlonely\n"},
		{"empty front", ",hello\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deckfile.Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
