// Package deckfile parses deck export files into card entries. The format
// is delimited text, one card per record: CSV, or TSV as produced by most
// flashcard app exporters. Lines starting with '#' are comments.
package deckfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Entry is one card's content parsed from a deck file.
type Entry struct {
	Front string
	Back  string
}

// Parse reads a deck file and returns its entries. The delimiter is
// autodetected from the first non-comment line (tab wins over comma, so
// TSV files with commas in card text parse correctly). A leading
// "front,back" header row is skipped. Records may carry trailing extra
// fields (tags and the like); they are ignored.
func Parse(r io.Reader) ([]Entry, error) {
	buffered := bufio.NewReader(r)

	delimiter, err := detectDelimiter(buffered)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(buffered)
	reader.Comma = delimiter
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var entries []Entry
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("parse deck file record %d: %w", line, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("parse deck file record %d: expected front and back, got %d field(s)", line, len(record))
		}

		front := strings.TrimSpace(record[0])
		back := strings.TrimSpace(record[1])
		if line == 1 && isHeader(front, back) {
			continue
		}
		if front == "" {
			return nil, fmt.Errorf("parse deck file record %d: empty front", line)
		}
		entries = append(entries, Entry{Front: front, Back: back})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("deck file contains no cards")
	}
	return entries, nil
}

// detectDelimiter peeks at the start of the stream and picks tab or comma
// based on the first line that is neither blank nor a comment.
func detectDelimiter(r *bufio.Reader) (rune, error) {
	const peekSize = 4096
	data, err := r.Peek(peekSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.ContainsRune(trimmed, '\t') {
			return '\t', nil
		}
		return ',', nil
	}
	return ',', nil
}

func isHeader(front, back string) bool {
	return strings.EqualFold(front, "front") && strings.EqualFold(back, "back")
}
