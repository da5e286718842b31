package transcription

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/phonconv/internal/phonetic"
)

var (
	// ErrUnsupportedInput is returned when the source notation cannot be
	// parsed. IPA is output-only.
	ErrUnsupportedInput = errors.New("unsupported input notation")

	// ErrUnsupportedOutput is returned for an undeclared target notation
	ErrUnsupportedOutput = errors.New("unsupported output notation")
)

// InvalidSymbolError reports an input token that has no catalog entry
type InvalidSymbolError struct {
	Notation phonetic.Notation
	Token    string
	Err      error
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%s %q: not recognised", e.Notation, e.Token)
}

func (e *InvalidSymbolError) Unwrap() error {
	return e.Err
}
