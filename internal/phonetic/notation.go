package phonetic

import (
	"fmt"
	"strings"
)

// Notation identifies one of the supported transcription schemes
type Notation int

const (
	ARPABET Notation = iota
	XSAMPA
	IPA
)

// Notations lists every supported notation in display order
var Notations = []Notation{ARPABET, XSAMPA, IPA}

func (n Notation) String() string {
	switch n {
	case ARPABET:
		return "ARPABET"
	case XSAMPA:
		return "X-SAMPA"
	case IPA:
		return "IPA"
	default:
		return fmt.Sprintf("Notation(%d)", int(n))
	}
}

// Valid reports whether n is one of the declared notations
func (n Notation) Valid() bool {
	return n >= ARPABET && n <= IPA
}

// IsKey reports whether the table can be queried by spellings in n.
// IPA spellings are not unique and are never used as lookup keys.
func (n Notation) IsKey() bool {
	return n == ARPABET || n == XSAMPA
}

// Separator returns the string written after every emitted unit in n
func (n Notation) Separator() string {
	if n == IPA {
		return ""
	}
	return " "
}

// ParseNotation maps a user-supplied name onto a Notation
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arpa", "arpabet":
		return ARPABET, nil
	case "xsampa", "x-sampa", "sampa":
		return XSAMPA, nil
	case "ipa":
		return IPA, nil
	}
	return 0, fmt.Errorf("unknown notation %q (want arpabet, xsampa or ipa)", s)
}
