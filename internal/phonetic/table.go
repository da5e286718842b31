package phonetic

import "fmt"

// Table is an immutable phoneme catalog indexed by ARPABET and X-SAMPA
// spelling. It is safe for concurrent use once built.
type Table struct {
	phonemes []Phoneme
	byARPA   map[string]int
	byXSAMPA map[string]int
}

// NewTable builds a table from the given catalog. Every ARPABET spelling and
// every X-SAMPA spelling must be unique since both are lookup keys.
func NewTable(phonemes []Phoneme) (*Table, error) {
	t := &Table{
		phonemes: make([]Phoneme, len(phonemes)),
		byARPA:   make(map[string]int, len(phonemes)),
		byXSAMPA: make(map[string]int, len(phonemes)),
	}
	copy(t.phonemes, phonemes)

	for i, p := range t.phonemes {
		if j, ok := t.byARPA[p.ARPABET]; ok {
			return nil, fmt.Errorf("duplicate ARPABET symbol %q (entries %d and %d)", p.ARPABET, j, i)
		}
		if j, ok := t.byXSAMPA[p.XSAMPA]; ok {
			return nil, fmt.Errorf("duplicate X-SAMPA symbol %q (entries %d and %d)", p.XSAMPA, j, i)
		}
		t.byARPA[p.ARPABET] = i
		t.byXSAMPA[p.XSAMPA] = i
	}

	return t, nil
}

// Lookup returns the phoneme spelled symbol in notation n
func (t *Table) Lookup(n Notation, symbol string) (Phoneme, error) {
	var (
		idx int
		ok  bool
	)
	switch n {
	case ARPABET:
		idx, ok = t.byARPA[symbol]
	case XSAMPA:
		idx, ok = t.byXSAMPA[symbol]
	}
	if !ok {
		return Phoneme{}, &UnknownSymbolError{Notation: n, Symbol: symbol}
	}
	return t.phonemes[idx], nil
}

// IsStress reports whether symbol is a stress marker in notation n
func (t *Table) IsStress(n Notation, symbol string) bool {
	p, err := t.Lookup(n, symbol)
	return err == nil && p.Class == Stress
}

// Entries returns a copy of the catalog in its original order
func (t *Table) Entries() []Phoneme {
	out := make([]Phoneme, len(t.phonemes))
	copy(out, t.phonemes)
	return out
}

// Len returns the number of catalog entries
func (t *Table) Len() int {
	return len(t.phonemes)
}
