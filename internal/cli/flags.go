package cli

import "runtime"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	From       string
	To         string
	Format     string
	OutputFile string

	// Batch flags
	BatchFile string
	Workers   int

	// Lexicon flags
	LexiconPath string
	Archive     bool

	// Logging flags
	LogLevel  string
	LogPretty bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		From:     "arpabet",
		To:       "ipa",
		Format:   "text",
		Workers:  runtime.NumCPU(),
		LogLevel: "warn",
	}
}
