package phonetic

import "fmt"

// UnknownSymbolError is returned when a symbol has no catalog entry in the
// requested notation
type UnknownSymbolError struct {
	Notation Notation
	Symbol   string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s %q not in phoneme set", e.Notation, e.Symbol)
}
