package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one transcription read from a batch file, optionally labelled
// with the word it spells
type Entry struct {
	Word          string
	Transcription string
	Line          int
}

// ReadBatchFile reads transcriptions from a file. Supported line formats:
//   - transcription only: "g uu 1 . g ax 0 l"
//   - labelled: "google = g uu 1 . g ax 0 l"
//
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	return ReadBatch(f)
}

// ReadBatch parses batch entries from r
func ReadBatch(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Line: lineNum}
		if word, text, ok := strings.Cut(line, "="); ok {
			entry.Word = strings.TrimSpace(word)
			entry.Transcription = strings.TrimSpace(text)
		} else {
			entry.Transcription = line
		}

		// "word =" with nothing to convert
		if entry.Transcription == "" {
			continue
		}
		entry.Transcription = normalizeSpaces(entry.Transcription)
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum, err)
	}

	return entries, nil
}

// normalizeSpaces collapses runs of blanks so hand-edited files with tabs or
// double spaces still tokenize.
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
