package transcription

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/phonconv/internal/phonetic"
)

// Converter rewrites transcriptions using a phoneme table. It holds no
// per-call state and may be shared between goroutines.
type Converter struct {
	table *phonetic.Table
}

// NewConverter creates a converter backed by table
func NewConverter(table *phonetic.Table) *Converter {
	return &Converter{table: table}
}

// Table returns the phoneme table the converter resolves symbols against
func (c *Converter) Table() *phonetic.Table {
	return c.table
}

// Convert rewrites text, a space separated transcription in notation from,
// into notation to. A single trailing space is accepted so that ARPABET and
// X-SAMPA output can be fed straight back in. Any unrecognised token fails
// the whole conversion.
func (c *Converter) Convert(text string, from, to phonetic.Notation) (string, error) {
	if !from.IsKey() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedInput, from)
	}
	if !to.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOutput, to)
	}
	if text == "" {
		return "", nil
	}

	text = strings.TrimSuffix(text, " ")
	sep := to.Separator()

	var out strings.Builder
	out.Grow(len(text) * 2)

	for _, token := range strings.Split(text, " ") {
		vowel, stress := c.splitStress(token, from)

		if stress == "" {
			p, err := c.resolve(token, from)
			if err != nil {
				return "", err
			}
			out.WriteString(p.Spelling(to))
			out.WriteString(sep)
			continue
		}

		if vowel != "" {
			p, err := c.resolve(vowel, from)
			if err != nil {
				return "", err
			}
			out.WriteString(p.Spelling(to))
			out.WriteString(sep)
		}

		marker, err := c.resolve(stress, from)
		if err != nil {
			return "", err
		}
		if to == phonetic.IPA {
			hoistStress(&out, marker.Spelling(to))
			continue
		}
		out.WriteString(marker.Spelling(to))
		out.WriteString(sep)
	}

	return out.String(), nil
}

// splitStress separates a trailing stress marker from token. For a bare
// marker vowel is empty; for a token without a marker stress is empty.
func (c *Converter) splitStress(token string, from phonetic.Notation) (vowel, stress string) {
	last, size := utf8.DecodeLastRuneInString(token)
	if last == utf8.RuneError {
		return token, ""
	}
	marker := token[len(token)-size:]
	if !c.table.IsStress(from, marker) {
		return token, ""
	}
	return token[:len(token)-size], marker
}

func (c *Converter) resolve(token string, from phonetic.Notation) (phonetic.Phoneme, error) {
	p, err := c.table.Lookup(from, token)
	if err != nil {
		return phonetic.Phoneme{}, &InvalidSymbolError{Notation: from, Token: token, Err: err}
	}
	return p, nil
}

// hoistStress inserts marker right after the last syllable boundary already
// written to out, or at the very start when there is none. The boundary is
// a single ASCII byte, so a byte scan never lands inside a multi-byte rune.
func hoistStress(out *strings.Builder, marker string) {
	if marker == "" {
		return
	}
	buf := out.String()
	idx := strings.LastIndex(buf, phonetic.SyllableBoundary) + 1

	out.Reset()
	out.Grow(len(buf) + len(marker))
	out.WriteString(buf[:idx])
	out.WriteString(marker)
	out.WriteString(buf[idx:])
}
